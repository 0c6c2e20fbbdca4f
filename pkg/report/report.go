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

// Package report composes the weekly notification sent to the marketing team
// after a run.
package report

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/neosolar/genbundler/pkg/generator"
)

// SubjectDateLayout formats the week date in the subject (DD/MM/YYYY).
const SubjectDateLayout = "02/01/2006"

const subjectPrefix = "Geradores solares configurados - Semana de "

var bodyTemplate = template.Must(template.New("body").Parse(`
Olá Equipe de Marketing,

Segue o relatório semanal de configuração de geradores solares.

Foram configurados {{ .Count }} geradores de energia solar esta semana.

Os detalhes completos de cada gerador estão disponíveis no arquivo CSV anexo a este e-mail.

Atenciosamente,
Equipe de Engenharia
Neosolar
`))

// Notification is a rendered notification message.
type Notification struct {
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body" yaml:"body"`
	Count   int    `json:"count" yaml:"count"`
}

// Compose builds the notification for items as of now.
func Compose(items []generator.LineItem, now time.Time) Notification {
	count := generator.CountBundles(items)

	var body bytes.Buffer
	// The template only formats an int; Execute cannot fail on a bytes.Buffer.
	_ = bodyTemplate.Execute(&body, struct{ Count int }{count})

	return Notification{
		Subject: subjectPrefix + now.Format(SubjectDateLayout),
		Body:    body.String(),
		Count:   count,
	}
}

// Render returns the text artifact: a subject line, a blank line and the body.
func (n Notification) Render() string {
	return fmt.Sprintf("Subject: %s\n\n%s", n.Subject, n.Body)
}

// Bytes returns Render as a byte slice.
func (n Notification) Bytes() []byte {
	return []byte(n.Render())
}
