package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	mail "gopkg.in/mail.v2"
)

type smtpClient struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
}

func NewSMTPClient(host string, port int, username, password, fromEmail string) (Client, error) {
	if host == "" || fromEmail == "" {
		return nil, fmt.Errorf("smtp host and from email are required")
	}
	return &smtpClient{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromEmail: fromEmail,
	}, nil
}

func (c *smtpClient) Send(templateFile, username, email string, data any) (int, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return -1, err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return -1, err
	}
	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return -1, err
	}

	m := mail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", FromName, c.fromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject.String())
	m.SetBody("text/html", body.String())

	d := mail.NewDialer(c.host, c.port, c.username, c.password)

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if lastErr = d.DialAndSend(m); lastErr == nil {
			return http.StatusOK, nil
		}
		time.Sleep(time.Second * time.Duration(i+1))
	}
	return -1, fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
