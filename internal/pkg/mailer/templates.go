package mailer

import "fmt"

// VerificationEmail builds the OTP verification message.
func VerificationEmail(code string) (subject, body string) {
	subject = "Verify your CampusTNG account"
	body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
			<h2>Welcome to CampusTNG</h2>
			<p>Use the code below to verify your email address. It expires in 15 minutes.</p>
			<p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">%s</p>
			<p>If you did not create an account, you can ignore this email.</p>
		</div>`, code)
	return subject, body
}

// PasswordResetEmail builds the reset-code message.
func PasswordResetEmail(code string) (subject, body string) {
	subject = "Reset your CampusTNG password"
	body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
			<h2>Password reset</h2>
			<p>Use the code below to reset your password. It expires in 15 minutes.</p>
			<p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">%s</p>
			<p>If you did not request a reset, you can ignore this email.</p>
		</div>`, code)
	return subject, body
}

// WelcomeEmail is sent after a successful verification.
func WelcomeEmail(firstName string) (subject, body string) {
	subject = "Welcome to CampusTNG"
	name := firstName
	if name == "" {
		name = "there"
	}
	body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
			<h2>Hi %s,</h2>
			<p>Your email is verified and your account is ready. Start listing items,
			offering services, or browsing deals on your campus.</p>
		</div>`, name)
	return subject, body
}
