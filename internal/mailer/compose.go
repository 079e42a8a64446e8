package mailer

import (
	"html/template"
	"strings"

	"github.com/mirsglobal/website/internal/models"
)

// Email body layout carried over from the site's notification emails:
// a heading, a contact block, and a free-text block.

const enquiryTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1e40af; border-bottom: 2px solid #1e40af; padding-bottom: 10px;">
    New Enquiry - MIRS Global Solutions
  </h2>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Contact Information</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Location:</strong> {{.Location}}</p>
    <p><strong>Service Required:</strong> {{.Service}}</p>
  </div>

  <div style="background-color: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Message</h3>
    <p style="line-height: 1.6;">{{.Message}}</p>
  </div>

  <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
    <p style="color: #6b7280; font-size: 14px;">
      This enquiry was submitted through the MIRS Global Solutions website.
    </p>
  </div>
</div>
`

const applicationTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1e40af; border-bottom: 2px solid #1e40af; padding-bottom: 10px;">
    New Career Application - MIRS Global Solutions
  </h2>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Applicant Information</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Location:</strong> {{.Location}}</p>
    <p><strong>Position:</strong> {{.Position}}</p>
    <p><strong>Experience:</strong> {{.Experience}}</p>
    <p><strong>Resume:</strong> <a href="{{.Resume}}">{{.Resume}}</a></p>
  </div>

  <div style="background-color: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Cover Letter</h3>
    <p style="line-height: 1.6;">{{.CoverLetter}}</p>
  </div>

  <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
    <p style="color: #6b7280; font-size: 14px;">
      This application was submitted through the MIRS Global Solutions careers page.
    </p>
  </div>
</div>
`

var (
	enquiryTemplate     = template.Must(template.New("enquiry").Parse(enquiryTmpl))
	applicationTemplate = template.Must(template.New("application").Parse(applicationTmpl))
)

func enquiryBody(e *models.Enquiry) (string, error) {
	var sb strings.Builder
	if err := enquiryTemplate.Execute(&sb, e); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func applicationBody(a *models.CareerApplication) (string, error) {
	var sb strings.Builder
	if err := applicationTemplate.Execute(&sb, a); err != nil {
		return "", err
	}
	return sb.String(), nil
}
