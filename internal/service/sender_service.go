package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"strings"
	"time"

	"salabelleza/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendTurnoEmail manda la confirmación o cancelación por correo. El envío
// es asíncrono: un fallo se loguea y no afecta la reserva.
func (s *SenderService) SendTurnoEmail(turno entities.TurnoResponse, estado string) {
	if turno.ClienteEmail == "" {
		return
	}

	loc, errLoc := time.LoadLocation("America/Argentina/Buenos_Aires")
	if errLoc != nil {
		loc = time.FixedZone("ART", -3*60*60)
	}

	var servicios []string
	for _, d := range turno.Detalles {
		servicios = append(servicios, d.Nombre)
	}

	emailData := entities.TurnoEmailData{
		ClienteNombre:      turno.ClienteNombre,
		EmpleadaNombre:     turno.EmpleadaNombre,
		Servicios:          servicios,
		FechaHoraFormatted: turno.FechaHora.In(loc).Format("02 Jan 2006 15:04"),
		CurrentYear:        time.Now().In(loc).Year(),
		Estado:             estado,
	}

	emailSubject := fmt.Sprintf("Tu turno en SalaBelleza está %s", estado)
	plainTextBody := fmt.Sprintf(
		"Hola %s,\n\nTu turno en SalaBelleza está %s.\n\n"+
			"Detalles del turno:\n"+
			"Servicios: %s\n"+
			"Profesional: %s\n"+
			"Fecha y hora: %s\n\n"+
			"Gracias por elegir SalaBelleza.\n\n"+
			"SalaBelleza. Todos los derechos reservados.",
		emailData.ClienteNombre, estado, strings.Join(servicios, ", "),
		emailData.EmpleadaNombre, emailData.FechaHoraFormatted,
	)

	tmplPath := filepath.Join("internal", "templates", "turno_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERTA: Error al parsear la plantilla de correo HTML (%s): %v", tmplPath, err)
		return
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
		log.Printf("ALERTA: Error al ejecutar la plantilla de correo HTML para turno %d: %v", turno.ID, err)
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("ALERTA (asíncrono): Falló envío de correo para turno %d: %v", turno.ID, errEmail)
		}
	}(turno.ClienteEmail, turno.ClienteNombre, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendTurnoSMS(turno entities.TurnoResponse, estado string) {
	if turno.ClienteTelefono == "" {
		return
	}

	loc, errLoc := time.LoadLocation("America/Argentina/Buenos_Aires")
	if errLoc != nil {
		loc = time.FixedZone("ART", -3*60*60)
	}

	smsMessage := fmt.Sprintf("SalaBelleza: ¡Tu turno del %s está %s!\nMás detalles en tu correo.",
		turno.FechaHora.In(loc).Format("02/01 15:04"), estado,
	)

	if errSMS := SendSMS(turno.ClienteTelefono, smsMessage); errSMS != nil {
		log.Printf("ALERTA: El turno %d se registró, pero falló el envío del SMS a %s: %v",
			turno.ID, turno.ClienteTelefono, errSMS)
	}
}
