package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"pentouz/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken signs a JWT for a staff account, valid for 7 days
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{
			UserId: user.ID,
			Role:   user.Role,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a plaintext password against its hash
func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// GenerateVerificationCode returns a 6-digit one-time code
func GenerateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

// VerifyGoogleIDToken validates a Google sign-in token and returns its payload
func VerifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %v", err)
	}
	return payload, nil
}

// SendVerificationEmail mails the account confirmation code
func SendVerificationEmail(email string, code string) error {
	subject := "Subject: Your one-time code\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Verification code</title>
		</head>
		<body>
			<p>Hello %s,</p>
			<p>We received a request for a one-time code for your account.</p>
			<p>Your one-time code is: <strong>%s</strong></p>
			<p>If you did not request this code you can safely ignore this email.</p>
			<p>You can confirm your account with the button below.</p>
			<p>
				<a href="%s/verify-email?token=%s" style="display: inline-block; padding: 10px 20px; background-color: #1a73e8; color: white; text-decoration: none; border-radius: 5px;">
					Confirm email
				</a>
			</p>
			<p>Thanks,<br>The accounts team</p>
		</body>
		</html>
	`, email, code, os.Getenv("CONSOLE_URL"), code)

	return sendMail(email, subject, body)
}

// SendResetCodeEmail mails the password-reset code
func SendResetCodeEmail(email string, code string) error {
	subject := "Subject: Password reset code\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Password reset</title>
		</head>
		<body>
			<p>Hello %s,</p>
			<p>We received a request to reset the password of your account.</p>
			<p>Your reset code is: <strong>%s</strong></p>
			<p>If you did not request this code you can safely ignore this email.</p>
			<p>Thanks,<br>The accounts team</p>
		</body>
		</html>
	`, email, code)

	return sendMail(email, subject, body)
}

// SendStaffWelcomeEmail mails the initial credentials of a new staff account
func SendStaffWelcomeEmail(email string, phone string, pass string) error {
	subject := "Subject: Your staff account was created\n"
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Account created</title>
	</head>
	<body>
		<p>Hello,</p>
		<p>A staff account has been created for you on the hotel console.</p>
		<p>Your account details:</p>
		<ul>
			<li>Email: <strong>%s</strong></li>
			<li>Phone: <strong>%s</strong></li>
			<li>Password: <strong>%s</strong></li>
		</ul>
		<p>Please change your password after the first sign-in.</p>
		<p>Thanks,<br>The accounts team</p>
	</body>
	</html>`, email, phone, pass)

	return sendMail(email, subject, body)
}

func sendMail(to string, subject string, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}
