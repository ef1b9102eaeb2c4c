package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lemerle/medassist/internal/appointments"
	"github.com/lemerle/medassist/internal/contact"
	"github.com/lemerle/medassist/internal/locale"
)

type mockEmailSender struct {
	sent []EmailMessage
	err  error
}

func (m *mockEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func bookedAppointment() *appointments.Appointment {
	return &appointments.Appointment{
		ID:    "appt-1",
		Name:  "Amina",
		Email: "amina@example.com",
		Phone: "0600000000",
		Date:  "2025-06-02",
		Time:  "09:30:00",
	}
}

func TestService_AppointmentBooked_French(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, nil, Config{BusinessName: "Le Merle"}, nil)

	if err := svc.AppointmentBooked(context.Background(), bookedAppointment(), locale.French); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.To != "amina@example.com" || msg.Subject != "Confirmation de votre rendez-vous" {
		t.Errorf("unexpected message: %+v", msg)
	}
	if !strings.Contains(msg.Body, "2025-06-02 à 09:30") {
		t.Errorf("body should mention the slot, got %q", msg.Body)
	}
	if !strings.Contains(msg.HTML, `dir="ltr"`) {
		t.Errorf("expected ltr html, got %q", msg.HTML)
	}
}

func TestService_AppointmentBooked_ArabicIsRTL(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, nil, Config{}, nil)

	if err := svc.AppointmentBooked(context.Background(), bookedAppointment(), locale.Arabic); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sender.sent[0].HTML, `dir="rtl"`) {
		t.Errorf("expected rtl html, got %q", sender.sent[0].HTML)
	}
}

func TestService_AppointmentBooked_SenderFailure(t *testing.T) {
	svc := NewService(&mockEmailSender{err: errors.New("quota")}, nil, Config{}, nil)
	if err := svc.AppointmentBooked(context.Background(), bookedAppointment(), locale.English); err == nil {
		t.Error("expected sender error to be returned")
	}
}

func TestService_AppointmentBooked_NilSender(t *testing.T) {
	svc := NewService(nil, nil, Config{}, nil)
	if err := svc.AppointmentBooked(context.Background(), bookedAppointment(), locale.English); err != nil {
		t.Errorf("expected no-op without sender, got %v", err)
	}
}

func TestService_ContactReceived(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, nil, Config{InboxEmail: "office@lemerle.ma"}, nil)

	err := svc.ContactReceived(context.Background(), &contact.Message{
		Name:    "Youssef",
		Email:   "y@example.com",
		Phone:   "0611111111",
		Message: "Avez-vous un infirmier disponible ?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := sender.sent[0]
	if msg.To != "office@lemerle.ma" {
		t.Errorf("expected inbox recipient, got %s", msg.To)
	}
	if msg.Subject != "Nouveau message de contact de Youssef" {
		t.Errorf("unexpected subject: %s", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Phone: 0611111111") {
		t.Errorf("body should include phone, got %q", msg.Body)
	}
}

func TestService_ContactReceived_NoInbox(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, nil, Config{}, nil)
	if err := svc.ContactReceived(context.Background(), &contact.Message{Name: "A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Error("no email expected without inbox")
	}
}

func TestFormatHTMLEscapes(t *testing.T) {
	got := formatHTML("a <b>\nc\n\nd", locale.English)
	want := `<div dir="ltr" lang="en"><p>a &lt;b&gt;<br>c</p><p>d</p></div>`
	if got != want {
		t.Errorf("formatHTML() = %q, want %q", got, want)
	}
}
