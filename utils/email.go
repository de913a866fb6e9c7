package utils

import (
	"log"
	"time"

	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"
)

// Mailer sends notification mail through an SMTP dialer guarded by a
// circuit breaker, so a dead mail relay stops being dialed after a few
// consecutive failures.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	cb     *gobreaker.CircuitBreaker
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		cb:     circuitBreaker("smtp"),
	}
}

func (mailer *Mailer) Send(to, subject, body string) error {
	_, err := mailer.cb.Execute(func() (interface{}, error) {
		message := gomail.NewMessage()
		message.SetHeader("From", mailer.from)
		message.SetHeader("To", to)
		message.SetHeader("Subject", subject)
		message.SetBody("text/plain", body)

		return nil, mailer.dialer.DialAndSend(message)
	})
	if err != nil {
		log.Printf("Could not send email: %v", err)
	}
	return err
}

func circuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Printf("Circuit Breaker '%s' changed from '%s' to '%s'\n", name, from, to)
			},
		},
	)
}
