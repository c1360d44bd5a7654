package utils

import (
	"fmt"
	"log"

	"bazario_back_end/internal/config"
	"bazario_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmation envoie l'email de confirmation après un paiement
// vérifié. Si le SMTP n'est pas configuré, on ne fait rien.
func SendOrderConfirmation(cfg *config.Config, to string, order models.Order) error {
	if cfg.SMTPHost == "" {
		log.Println("⚠️ SMTP non configuré — email de confirmation ignoré")
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(cfg.EmailFrom); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Order %s confirmed", order.OrderID))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

func orderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, line := range order.Products {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">₹%.2f</td>
				<td style="padding: 8px; border: 1px solid #ddd;">₹%.2f</td>
			</tr>`, line.ProductID, line.Quantity, line.UnitPrice, line.TotalAmount)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Payment received for order %s</h2>
		<p>Your order has been paid and is now being processed.</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Product</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Unit price</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
		<p style="font-weight: bold;">Total: ₹%.2f</p>
	</div>
</body>
</html>`, order.OrderID, itemsHTML, order.TotalAmount)
}
