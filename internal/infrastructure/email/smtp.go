package email

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/pkg/config"
	"github.com/Nataraj2001/LMS/pkg/money"
)

const greetingTemplate = "<h2>Dear "

const footer = "<br/><p>Best Regards,</p><p><b>VSPRINTS Bank Team</b></p>" +
	"<p>Customer Support: support@vsprintsbank.com</p>"

// SMTPSender implements domain.NotificationSender over plain SMTP.
type SMTPSender struct {
	cfg    config.SMTPConfig
	logger zerolog.Logger
}

func New(cfg config.SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *SMTPSender) SendAccountCreated(ctx context.Context, account *domain.Account) error {
	body := greetingTemplate + account.HolderName + ",</h2>" +
		"<p>Welcome to <b>VSPRINTS Bank</b>! Your bank account has been successfully created.</p>" +
		fmt.Sprintf("<p><b>Account Number:</b> %d</p>", account.AccountNumber) +
		"<p>For security reasons, please do not share your account details with anyone.</p>" +
		footer
	return s.send(ctx, account.Email, "Welcome to VSPRINTS Bank - Your Account is Successfully Created!", body)
}

func (s *SMTPSender) SendLoanSubmitted(ctx context.Context, account *domain.Account, application *domain.LoanApplication) error {
	body := greetingTemplate + account.HolderName + ",</h2>" +
		"<p>We have received your loan application.</p>" +
		fmt.Sprintf("<p><b>Loan Type:</b> %s</p>", application.LoanType) +
		fmt.Sprintf("<p><b>Loan Amount Requested:</b> %s</p>", money.FormatINR(application.LoanAmount)) +
		"<p>We are currently reviewing your application. You will be notified once it is approved.</p>" +
		footer
	return s.send(ctx, account.Email, "Loan Application Received - VSPRINTS Bank", body)
}

func (s *SMTPSender) SendLoanDecision(ctx context.Context, account *domain.Account, application *domain.LoanApplication, approved bool) error {
	var subject, body string
	if approved {
		subject = "Loan Approval Notification - VSPRINTS Bank"
		body = greetingTemplate + account.HolderName + ",</h2>" +
			fmt.Sprintf("<p>Your <b>%s</b> loan application has been <b>approved</b>.</p>", application.LoanType) +
			fmt.Sprintf("<p><b>Loan Amount:</b> %s</p>", money.FormatINR(application.LoanAmount)) +
			"<p>The sanctioned amount has been credited to your account.</p>" +
			footer
	} else {
		subject = "Loan Rejection Notification - VSPRINTS Bank"
		body = greetingTemplate + account.HolderName + ",</h2>" +
			fmt.Sprintf("<p>We regret to inform you that your <b>%s</b> loan application has been <b>rejected</b>.</p>", application.LoanType) +
			fmt.Sprintf("<p><b>Loan Amount Requested:</b> %s</p>", money.FormatINR(application.LoanAmount)) +
			"<p>Please contact our support team for further assistance.</p>" +
			footer
	}
	return s.send(ctx, account.Email, subject, body)
}

func (s *SMTPSender) SendRepaymentConfirmed(ctx context.Context, account *domain.Account, loanID string, amountPaid, remainingDue float64, paymentMode string) error {
	body := greetingTemplate + account.HolderName + ",</h2>" +
		"<p>Your loan repayment has been successfully processed.</p>" +
		fmt.Sprintf("<p><b>Loan ID:</b> %s</p>", loanID) +
		fmt.Sprintf("<p><b>Payment Amount:</b> %s</p>", money.FormatINR(amountPaid)) +
		fmt.Sprintf("<p><b>Remaining Due Amount:</b> %s</p>", money.FormatINR(remainingDue)) +
		fmt.Sprintf("<p><b>Payment Mode:</b> %s</p>", paymentMode) +
		footer
	return s.send(ctx, account.Email, "Loan Repayment Successful - Loan ID: "+loanID, body)
}

func (s *SMTPSender) SendPreclosureConfirmed(ctx context.Context, account *domain.Account, loanID string, amount float64, paymentMode string) error {
	body := greetingTemplate + account.HolderName + ",</h2>" +
		"<p>Your loan preclosure request has been successfully processed.</p>" +
		fmt.Sprintf("<p><b>Loan ID:</b> %s</p>", loanID) +
		fmt.Sprintf("<p><b>Preclosure Amount Paid:</b> %s</p>", money.FormatINR(amount)) +
		fmt.Sprintf("<p><b>Payment Mode:</b> %s</p>", paymentMode) +
		"<p>Your loan has been successfully closed.</p>" +
		footer
	return s.send(ctx, account.Email, "Loan Preclosure Confirmation - Loan ID: "+loanID, body)
}

func (s *SMTPSender) SendDueReminder(ctx context.Context, account *domain.Account, loanID string, dueAmount float64, dueDate time.Time) error {
	body := greetingTemplate + account.HolderName + ",</h2>" +
		"<p>This is a friendly reminder that your loan repayment is due.</p>" +
		fmt.Sprintf("<p><b>Loan ID:</b> %s</p>", loanID) +
		fmt.Sprintf("<p><b>Amount Due:</b> %s</p>", money.FormatINR(dueAmount)) +
		fmt.Sprintf("<p><b>Due Date:</b> %s</p>", dueDate.Format("02 Jan 2006")) +
		"<p>Please ensure timely payment to avoid any penalties or late fees.</p>" +
		footer
	return s.send(ctx, account.Email, "Loan Repayment Reminder - Loan ID: "+loanID, body)
}

func (s *SMTPSender) SendOTP(ctx context.Context, to, name, otp string) error {
	body := greetingTemplate + name + ",</h2>" +
		"<p>You have requested to reset your password.</p>" +
		fmt.Sprintf("<p><b>Your One-Time Password (OTP):</b> %s</p>", otp) +
		"<p>This OTP is valid for only 10 minutes. Please do not share this OTP with anyone.</p>" +
		footer
	return s.send(ctx, to, "VSPRINTS Bank - OTP for Password Reset", body)
}

func (s *SMTPSender) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte("From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" + body)

	addr := s.cfg.Host + ":" + s.cfg.Port
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		s.logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send email")
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	s.logger.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}
