package utils

import (
	"fmt"
	"time"
)

// SendExpenseDecisionEmail notifies the admin who submitted an expense that it
// was approved, marked completed, or rejected. The reason is only rendered for
// rejections.
func SendExpenseDecisionEmail(to, firstName, expenseTitle, amount, status, reason string, decidedAt time.Time) error {
	subject := fmt.Sprintf("📋 Expense '%s' is now %s", expenseTitle, status)

	reasonBlock := ""
	if reason != "" {
		reasonBlock = fmt.Sprintf(`<p class="message"><b>Reason:</b> %s</p>`, reason)
	}

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Expense Decision</title>
	<style>
		body {
			font-family: 'Segoe UI', Roboto, Arial, sans-serif;
			background-color: #f6f8f7;
			margin: 0;
			padding: 0;
			color: #333;
		}
		.container {
			max-width: 480px;
			margin: 25px auto;
			background: #ffffff;
			border-radius: 12px;
			box-shadow: 0 4px 16px rgba(0, 0, 0, 0.08);
			overflow: hidden;
			border-top: 5px solid #1d4e89;
		}
		.header {
			background-color: #1d4e89;
			color: #ffffff;
			text-align: center;
			padding: 18px 12px;
		}
		.header h1 {
			margin: 0;
			font-size: 18px;
			font-weight: 600;
		}
		.content {
			padding: 20px 18px;
		}
		.message {
			font-size: 14px;
			line-height: 1.6;
			color: #444;
		}
		.amount-box {
			background: #f2f6fb;
			border: 1px solid #c4d3e8;
			border-radius: 8px;
			padding: 12px 14px;
			margin: 16px 0;
			text-align: center;
		}
		.amount-box h3 {
			margin: 0;
			color: #1d4e89;
			font-size: 16px;
			font-weight: 700;
		}
		.amount-box p {
			margin: 6px 0 0;
			font-size: 13px;
		}
		.footer {
			background: #f0f4f8;
			text-align: center;
			padding: 14px;
			font-size: 12px;
			color: #777;
		}
		.brand {
			color: #1d4e89;
			font-weight: bold;
		}
	</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Expense %s</h1>
			</div>
			<div class="content">
				<p class="message">Hello %s,</p>
				<p class="message">
					Your expense request has been reviewed and is now <b>%s</b>.
				</p>
				<div class="amount-box">
					<h3>RWF %s</h3>
					<p>%s</p>
					<p>Decided on: %s</p>
				</div>
				%s
			</div>
			<div class="footer">
				&copy; %d <span class="brand">Ihumure</span> — Raise Your Voice.
			</div>
		</div>
	</body>
	</html>
	`, status, firstName, status, amount, expenseTitle, decidedAt.Format("Jan 2, 2006"), reasonBlock, time.Now().Year())

	return SendEmail(to, subject, body)
}
