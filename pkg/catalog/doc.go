// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package catalog loads the product catalog and maps its records to the
// components the generator works with.
//
// A catalog is an array of records:
//
//	[
//	  {"Id": "P1", "Produto": "Painel 550W", "Categoria": "Painel Solar", "Potencia em W": 550},
//	  {"Id": 17, "Produto": "Inversor 2200W", "Categoria": "Inversor", "Potencia em W": 2200}
//	]
//
// Identifiers may be strings or numbers. Category labels are matched without
// regard to case: "Painel Solar", "Inversor" and "Controlador de carga" map to
// CategoryPanel, CategoryInverter and CategoryController. Other labels map to
// CategoryUnknown; such components stay in the catalog but never enter a
// bundle.
//
// Load accepts the same sources as serializer.ReadSource:
//
//	cat, err := catalog.Load(ctx, "cm://solar/catalog",
//	    catalog.WithSourceOptions(serializer.SourceOptions{Kubeconfig: kc}))
//	if err != nil {
//	    return err // CATALOG_UNREADABLE
//	}
//	components := cat.Components()
package catalog
