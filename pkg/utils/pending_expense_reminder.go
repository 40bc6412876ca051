package utils

import (
	"fmt"
	"time"
)

// SendPendingExpenseReminderEmail nudges an approver when expense requests
// have been sitting in PENDING for too long.
func SendPendingExpenseReminderEmail(to, firstName string, pendingCount int, oldestTitle string, oldestSince time.Time) error {
	subject := fmt.Sprintf("⏳ Reminder: %d expense request(s) awaiting your review", pendingCount)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Pending Expense Reminder</title>
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
			border-top: 5px solid #d9534f;
		}
		.header {
			background-color: #d9534f;
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
		.count-box {
			background: #fff6f6;
			border: 1px solid #f1c1c1;
			border-radius: 8px;
			padding: 12px 14px;
			margin: 16px 0;
			text-align: center;
		}
		.count-box h3 {
			margin: 0;
			color: #d9534f;
			font-size: 16px;
			font-weight: 700;
		}
		.count-box p {
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
				<h1>Expenses Awaiting Review</h1>
			</div>
			<div class="content">
				<p class="message">Hello %s,</p>
				<p class="message">
					There are expense requests on the Ihumure dashboard that have been
					waiting for a decision for more than a week.
				</p>
				<div class="count-box">
					<h3>%d pending request(s)</h3>
					<p>Oldest: '%s'</p>
					<p>Submitted: %s</p>
				</div>
				<p class="message">
					Please log in to the dashboard to approve or reject them.
				</p>
			</div>
			<div class="footer">
				&copy; %d <span class="brand">Ihumure</span> — Raise Your Voice.
			</div>
		</div>
	</body>
	</html>
	`, firstName, pendingCount, oldestTitle, oldestSince.Format("Jan 2, 2006"), time.Now().Year())

	return SendEmail(to, subject, body)
}
