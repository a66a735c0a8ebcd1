package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendResetEmail delivers the password-reset code.
func SendResetEmail(to string, code string) error {
	subject := "Reto 21D - Código de recuperación"
	body := fmt.Sprintf("Tu código para restablecer la contraseña es: %s\n\nIngrésalo en la aplicación para crear una nueva contraseña.", code)
	return sendEmail(to, subject, body)
}

// SendWelcomeEmail greets a new participant after signup.
func SendWelcomeEmail(to string, firstName string) error {
	subject := "¡Bienvenido al Reto 21D!"
	body := fmt.Sprintf("Hola %s:\n\nTu cuenta está lista. Completa tus métricas del Día 0 para comenzar el reto.", firstName)
	return sendEmail(to, subject, body)
}
