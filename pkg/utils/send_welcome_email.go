package utils

import (
	"fmt"
	"time"
)

func SendWelcomeEmail(to, username string) error {
	subject := fmt.Sprintf("🎉 Welcome to the Ihumure Admin Dashboard, %s!", username)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8" />
		<meta name="viewport" content="width=device-width, initial-scale=1.0" />
		<title>Welcome to Ihumure</title>
		<style>
			body {
				font-family: 'Segoe UI', Roboto, Arial, sans-serif;
				background-color: #f9fbfa;
				margin: 0;
				padding: 0;
			}
			.container {
				max-width: 650px;
				margin: 40px auto;
				background: #ffffff;
				border-radius: 18px;
				box-shadow: 0 10px 30px rgba(0, 0, 0, 0.08);
				overflow: hidden;
				border-top: 6px solid #1d4e89;
			}
			.header {
				background-color: #1d4e89;
				color: #ffffff;
				text-align: center;
				padding: 28px 20px;
			}
			.header h1 {
				margin: 0;
				font-size: 24px;
				font-weight: 600;
			}
			.content {
				padding: 30px 35px;
				color: #333333;
			}
			.greeting {
				font-size: 16px;
				font-weight: 500;
				margin-bottom: 12px;
			}
			.message {
				font-size: 15px;
				line-height: 1.7;
				color: #555555;
			}
			.footer {
				background: #f0f4f8;
				text-align: center;
				padding: 18px;
				font-size: 13px;
				color: #777777;
				border-top: 1px solid #e5e5e5;
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
				<h1>Welcome Aboard!</h1>
			</div>
			<div class="content">
				<p class="greeting">Hey %s 👋,</p>
				<p class="message">
					Your admin account on the <b>Ihumure</b> dashboard is verified and ready.
					You can now manage reports, review expenses, and keep the team directory up to date.
				</p>
				<p class="message">
					Thank you for supporting the mission. We are glad to have you with us.
				</p>
			</div>
			<div class="footer">
				&copy; %d <span class="brand">Ihumure</span> — Raise Your Voice.
			</div>
		</div>
	</body>
	</html>
	`, username, time.Now().Year())

	return SendEmail(to, subject, body)
}
