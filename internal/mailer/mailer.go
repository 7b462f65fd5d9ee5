package mailer

// Mailer 定義訂單通知信件的寄送介面
type Mailer interface {
	SendOrderConfirmation(toEmail, toName string, orderID int, amount float64) error
	SendOrderStatusUpdate(toEmail, toName string, orderID int, status string) error
}
