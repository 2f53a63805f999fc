package utils

import (
	"caces/config"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CACES Manager <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A5C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A5C; line-height: 1.6; }
			.content h2 { color: #1B3A5C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #E8A33D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CACES MANAGER</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Message automatique - merci de ne pas répondre.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendSessionReminderEmail notifies a trainer of an upcoming exam session.
func SendSessionReminderEmail(email, trainerName, sessionName string, date time.Time, location string) {
	if location == "" {
		location = "lieu non précisé"
	}

	subject := "Rappel : session " + sessionName
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>La session <strong>%s</strong> est planifiée le <strong>%s</strong> (%s).</p>
		<div class="info-box">
			<strong>À vérifier :</strong> boîtiers chargés, liste des participants à jour, blocs sélectionnés.
		</div>
	`, trainerName, sessionName, date.Format("02/01/2006"), location)

	go SendEmail([]string{email}, subject, getEmailTemplate("Session à venir", body))
}

// SendSessionReportEmail sends the headline numbers of a completed session.
func SendSessionReportEmail(email, trainerName, sessionName string, averageScore, successRate float64) {
	subject := "Résultats : session " + sessionName
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>La session <strong>%s</strong> est terminée.</p>
		<div class="info-box">
			<strong>Score moyen :</strong> %.1f%%<br>
			<strong>Taux de réussite :</strong> %.1f%%
		</div>
		<p>Le rapport complet et les exports CSV sont disponibles dans l'application.</p>
	`, trainerName, sessionName, averageScore, successRate)

	go SendEmail([]string{email}, subject, getEmailTemplate("Session terminée", body))
}
