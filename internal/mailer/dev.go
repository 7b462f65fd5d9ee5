package mailer

import "log"

// DevMailer 未設定 MailerSend 時使用，僅把信件內容寫到 log
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (DevMailer) SendOrderConfirmation(toEmail, toName string, orderID int, amount float64) error {
	log.Printf("[DEV MAIL] order confirmation: to=%s (%s) order=%d amount=%.2f", toEmail, toName, orderID, amount)
	return nil
}

func (DevMailer) SendOrderStatusUpdate(toEmail, toName string, orderID int, status string) error {
	log.Printf("[DEV MAIL] order status update: to=%s (%s) order=%d status=%s", toEmail, toName, orderID, status)
	return nil
}
