package notify

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/teamwear/jersey-orders/internal/app/converter"
	"github.com/teamwear/jersey-orders/internal/app/entity"
)

const (
	createdSubject    = "Jersey order %s received"
	statusDoneSubject = "Jersey order %s completed"
	adminAlertSubject = "New jersey order %s"
)

const createdHTML = `<html><body>
<p>Hi {{.Name}},</p>
<p>Your jersey order <strong>{{.OrderID}}</strong> has been received and is pending review.</p>
<ul>
<li>Jersey number: {{.JerseyNumber}}</li>
<li>Size: {{.Size}}</li>
<li>Collar: {{.CollarType}}</li>
<li>Sleeves: {{.SleeveType}}</li>
<li>Price: {{.FinalPrice}}</li>
</ul>
<p>We will email you again once the order is completed.</p>
</body></html>`

const createdText = `Hi {{.Name}},

Your jersey order {{.OrderID}} has been received and is pending review.

Jersey number: {{.JerseyNumber}}
Size: {{.Size}}
Collar: {{.CollarType}}
Sleeves: {{.SleeveType}}
Price: {{.FinalPrice}}

We will email you again once the order is completed.`

const statusDoneHTML = `<html><body>
<p>Hi {{.Name}},</p>
<p>Your jersey order <strong>{{.OrderID}}</strong> (number {{.JerseyNumber}}) has been completed.</p>
</body></html>`

const statusDoneText = `Hi {{.Name}},

Your jersey order {{.OrderID}} (number {{.JerseyNumber}}) has been completed.`

const adminAlertHTML = `<html><body>
<p>A new jersey order <strong>{{.OrderID}}</strong> was submitted.</p>
<ul>
<li>Name: {{.Name}}</li>
<li>Student ID: {{.StudentID}}</li>
<li>Jersey number: {{.JerseyNumber}}</li>
<li>Size: {{.Size}}</li>
<li>Price: {{.FinalPrice}}</li>
</ul>
</body></html>`

const adminAlertText = `A new jersey order {{.OrderID}} was submitted.

Name: {{.Name}}
Student ID: {{.StudentID}}
Jersey number: {{.JerseyNumber}}
Size: {{.Size}}
Price: {{.FinalPrice}}`

type templateData struct {
	OrderID      string
	Name         string
	StudentID    string
	JerseyNumber int
	Size         string
	CollarType   string
	SleeveType   string
	FinalPrice   string
}

func newTemplateData(order entity.Order) templateData {
	return templateData{
		OrderID:      converter.FormatPublicOrderID(order.ID),
		Name:         order.Name,
		StudentID:    order.StudentID,
		JerseyNumber: order.JerseyNumber,
		Size:         order.Size,
		CollarType:   order.CollarType,
		SleeveType:   order.SleeveType,
		FinalPrice:   fmt.Sprintf("%.2f", order.FinalPrice),
	}
}

func renderOrderCreated(order entity.Order) (Message, error) {
	return renderMessage(order.Email, createdSubject, createdHTML, createdText, newTemplateData(order))
}

func renderStatusDone(order entity.Order) (Message, error) {
	return renderMessage(order.Email, statusDoneSubject, statusDoneHTML, statusDoneText, newTemplateData(order))
}

func renderAdminAlert(order entity.Order, adminEmail string) (Message, error) {
	return renderMessage(adminEmail, adminAlertSubject, adminAlertHTML, adminAlertText, newTemplateData(order))
}

func renderMessage(to, subjectFormat, htmlBody, textBody string, data templateData) (Message, error) {
	html, err := renderHTML(htmlBody, data)
	if err != nil {
		return Message{}, fmt.Errorf("error while rendering html body: %w", err)
	}

	text, err := renderText(textBody, data)
	if err != nil {
		return Message{}, fmt.Errorf("error while rendering text body: %w", err)
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf(subjectFormat, data.OrderID),
		HTML:    html,
		Text:    text,
	}, nil
}

func renderHTML(body string, data templateData) (string, error) {
	tmpl, err := htmltemplate.New("html").Parse(body)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	err = tmpl.Execute(&out, data)
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

func renderText(body string, data templateData) (string, error) {
	tmpl, err := texttemplate.New("text").Parse(body)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	err = tmpl.Execute(&out, data)
	if err != nil {
		return "", err
	}

	return out.String(), nil
}
