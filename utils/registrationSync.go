package utils

import (
	"log"
	"time"

	"examportal/models"

	"github.com/go-resty/resty/v2"
)

// RegistrationNotifier pushes newly registered candidates to an external
// endpoint. The push is lossy best effort: a failure is logged and the
// registration response is never blocked on it.
type RegistrationNotifier struct {
	client *resty.Client
	url    string
}

func NewRegistrationNotifier(url string) *RegistrationNotifier {
	return &RegistrationNotifier{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    url,
	}
}

// NotifyRegistered posts the candidate's public fields. Callers run it in a
// goroutine.
func (n *RegistrationNotifier) NotifyRegistered(candidate models.Candidate) {
	if n.url == "" {
		return
	}

	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"id":    candidate.ID,
			"name":  candidate.Name,
			"email": candidate.Email,
		}).
		Post(n.url)
	if err != nil {
		log.Printf("Error syncing candidate %d to external endpoint: %v", candidate.ID, err)
		return
	}

	if resp.IsError() {
		log.Printf("External registration sync failed for candidate %d: %s", candidate.ID, resp.Status())
	} else {
		log.Printf("Candidate synced successfully to external endpoint: %s", candidate.Email)
	}
}
