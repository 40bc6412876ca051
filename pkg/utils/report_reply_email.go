package utils

import (
	"fmt"
	"time"
)

// SendReportReplyEmail notifies a report's author that another admin replied.
func SendReportReplyEmail(to, authorName, reportTitle, replierName, replySnippet string) error {
	subject := fmt.Sprintf("💬 New reply on your report '%s'", reportTitle)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>New Report Reply</title>
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
		.reply-box {
			background: #f2f6fb;
			border-left: 4px solid #1d4e89;
			border-radius: 6px;
			padding: 12px 14px;
			margin: 16px 0;
			font-size: 14px;
			font-style: italic;
			color: #555;
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
				<h1>New Reply on '%s'</h1>
			</div>
			<div class="content">
				<p class="message">Hello %s,</p>
				<p class="message">
					<b>%s</b> replied to your report on the Ihumure dashboard:
				</p>
				<div class="reply-box">%s</div>
				<p class="message">
					Log in to the dashboard to read the full conversation and respond.
				</p>
			</div>
			<div class="footer">
				&copy; %d <span class="brand">Ihumure</span> — Raise Your Voice.
			</div>
		</div>
	</body>
	</html>
	`, reportTitle, authorName, replierName, replySnippet, time.Now().Year())

	return SendEmail(to, subject, body)
}
