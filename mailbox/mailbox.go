package mailbox

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/textproto"
	"os"
	"path"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/spachava753/vcardbox/card"
	"github.com/spachava753/vcardbox/vcf"
)

const (
	envEmail    = "VCARDBOX_EMAIL"
	envPassword = "VCARDBOX_PASSWORD"
	envIMAPAddr = "VCARDBOX_IMAP_ADDRESS"
	envSMTPAddr = "VCARDBOX_SMTP_ADDRESS"

	defaultMailbox = "INBOX"
)

// Account holds the mail account the package operates against.
type Account struct {
	Address  string
	Password string
	IMAPAddr string
	SMTPAddr string
}

// LoadAccount reads the account from the environment. Every variable is
// required; spaces in the password are stripped so app passwords can be
// pasted as displayed.
func LoadAccount() (Account, error) {
	account := Account{
		Address:  strings.TrimSpace(os.Getenv(envEmail)),
		Password: strings.ReplaceAll(os.Getenv(envPassword), " ", ""),
		IMAPAddr: strings.TrimSpace(os.Getenv(envIMAPAddr)),
		SMTPAddr: strings.TrimSpace(os.Getenv(envSMTPAddr)),
	}
	for _, required := range []struct {
		name  string
		value string
	}{
		{envEmail, account.Address},
		{envPassword, account.Password},
		{envIMAPAddr, account.IMAPAddr},
		{envSMTPAddr, account.SMTPAddr},
	} {
		if required.value == "" {
			return Account{}, fmt.Errorf("mailbox: %s is required", required.name)
		}
	}
	return account, nil
}

// Query captures typed search criteria for Fetch.
type Query struct {
	From            []string
	SubjectContains []string
	Seen            *bool
	After           *time.Time
	Before          *time.Time
}

// FetchInput selects messages to scan for card attachments.
//
// Example:
//
//	out, err := mailbox.Fetch(mailbox.FetchInput{
//		Query:  mailbox.Query{SubjectContains: []string{"contact"}},
//		Limit:  25,
//		Config: card.Config{Variant: card.VariantDefault},
//	})
type FetchInput struct {
	Mailbox string
	Query   Query
	Limit   int
	// Config is the record configuration applied to every decoded card.
	// Config.Account is overridden with the fetching account.
	Config card.Config
}

// FetchOutput reports the decoded cards and how many messages were scanned.
type FetchOutput struct {
	Contacts []*card.Contact
	Scanned  int
}

// Fetch searches the mailbox and decodes every vCard attachment found into
// consolidated contact records.
func Fetch(input FetchInput) (FetchOutput, error) {
	account, err := LoadAccount()
	if err != nil {
		return FetchOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 50
	}
	mailboxName := strings.TrimSpace(input.Mailbox)
	if mailboxName == "" {
		mailboxName = defaultMailbox
	}

	imapClient, err := connectIMAP(account)
	if err != nil {
		return FetchOutput{}, err
	}
	defer imapClient.Logout()

	if _, err := imapClient.Select(mailboxName, true); err != nil {
		return FetchOutput{}, fmt.Errorf("mailbox: selecting %q failed: %w", mailboxName, err)
	}

	uids, err := imapClient.UidSearch(buildSearchCriteria(input.Query))
	if err != nil {
		return FetchOutput{}, fmt.Errorf("mailbox: searching messages failed: %w", err)
	}
	if len(uids) > limit {
		// Newest first; the search returns ascending UIDs.
		uids = uids[len(uids)-limit:]
	}
	if len(uids) == 0 {
		return FetchOutput{Contacts: []*card.Contact{}}, nil
	}

	cfg := input.Config
	cfg.Account = &card.Account{Name: account.Address, Type: "imap"}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uids...)
	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchUid, imap.FetchEnvelope, section.FetchItem()}

	messages := make(chan *imap.Message, len(uids)+8)
	done := make(chan error, 1)
	go func() {
		done <- imapClient.UidFetch(seqSet, items, messages)
	}()

	out := FetchOutput{Contacts: []*card.Contact{}}
	for msg := range messages {
		out.Scanned++
		literal := msg.GetBody(section)
		if literal == nil {
			continue
		}
		raw, err := io.ReadAll(literal)
		if err != nil {
			return FetchOutput{}, fmt.Errorf("mailbox: reading fetched body failed: %w", err)
		}
		payloads, err := collectCardPayloads(raw)
		if err != nil {
			return FetchOutput{}, fmt.Errorf("mailbox: parsing fetched body failed: %w", err)
		}
		for _, payload := range payloads {
			contacts, err := vcf.DecodeAll(bytes.NewReader(payload), cfg)
			if err != nil {
				return FetchOutput{}, fmt.Errorf("mailbox: decoding card attachment failed: %w", err)
			}
			out.Contacts = append(out.Contacts, contacts...)
		}
	}
	if err := <-done; err != nil {
		return FetchOutput{}, fmt.Errorf("mailbox: fetching messages failed: %w", err)
	}
	return out, nil
}

// ShareInput describes one outgoing card share.
//
// CardData is the raw vCard text to attach; Filename defaults to
// "contact.vcf".
type ShareInput struct {
	To       []string
	Cc       []string
	Subject  string
	TextBody string
	CardData []byte
	Filename string
}

// ShareOutput reports the generated Message-ID.
type ShareOutput struct {
	MessageID string
}

// Share emails a vCard as a base64 attachment.
func Share(input ShareInput) (ShareOutput, error) {
	if len(input.CardData) == 0 {
		return ShareOutput{}, errors.New("mailbox: card data is required")
	}
	recipients := uniqueRecipients(input.To, input.Cc)
	if len(recipients) == 0 {
		return ShareOutput{}, errors.New("mailbox: at least one recipient is required")
	}

	account, err := LoadAccount()
	if err != nil {
		return ShareOutput{}, err
	}

	messageID := generateMessageID(account.Address)
	raw := buildShareMessage(account.Address, input, messageID)

	smtpClient, err := connectSMTP(account)
	if err != nil {
		return ShareOutput{}, err
	}
	defer smtpClient.Close()

	if err := smtpClient.Mail(account.Address, nil); err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: MAIL FROM failed: %w", err)
	}
	for _, rcpt := range recipients {
		if err := smtpClient.Rcpt(rcpt, nil); err != nil {
			return ShareOutput{}, fmt.Errorf("mailbox: RCPT TO %q failed: %w", rcpt, err)
		}
	}
	writer, err := smtpClient.Data()
	if err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: DATA failed: %w", err)
	}
	if _, err := writer.Write(raw); err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: writing message failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: finalizing message failed: %w", err)
	}
	if err := smtpClient.Quit(); err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: QUIT failed: %w", err)
	}
	return ShareOutput{MessageID: messageID}, nil
}

func buildSearchCriteria(query Query) *imap.SearchCriteria {
	criteria := imap.NewSearchCriteria()
	for _, from := range query.From {
		if from = strings.TrimSpace(from); from != "" {
			criteria.Header.Add("FROM", from)
		}
	}
	for _, subject := range query.SubjectContains {
		if subject = strings.TrimSpace(subject); subject != "" {
			criteria.Header.Add("SUBJECT", subject)
		}
	}
	if query.Seen != nil {
		if *query.Seen {
			criteria.WithFlags = append(criteria.WithFlags, imap.SeenFlag)
		} else {
			criteria.WithoutFlags = append(criteria.WithoutFlags, imap.SeenFlag)
		}
	}
	if query.After != nil {
		criteria.Since = *query.After
	}
	if query.Before != nil {
		criteria.Before = *query.Before
	}
	return criteria
}

// collectCardPayloads walks the MIME tree of a raw message and returns the
// decoded body of every vCard part.
func collectCardPayloads(raw []byte) ([][]byte, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(msg.Body)
	if err != nil {
		return nil, err
	}
	return walkEntity(textproto.MIMEHeader(msg.Header), body)
}

func walkEntity(header textproto.MIMEHeader, body []byte) ([][]byte, error) {
	mediaType, params, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil || mediaType == "" {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return nil, nil
		}
		reader := multipart.NewReader(bytes.NewReader(body), boundary)
		var payloads [][]byte
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			partBody, err := io.ReadAll(part)
			if err != nil {
				return nil, err
			}
			nested, err := walkEntity(textproto.MIMEHeader(part.Header), partBody)
			if err != nil {
				return nil, err
			}
			payloads = append(payloads, nested...)
		}
		return payloads, nil
	}

	if !isCardPart(header, mediaType) {
		return nil, nil
	}
	decoded, err := decodeTransferEncoding(header.Get("Content-Transfer-Encoding"), body)
	if err != nil {
		return nil, err
	}
	return [][]byte{decoded}, nil
}

// isCardPart reports whether a leaf MIME part carries a vCard, either by
// content type or by attachment filename.
func isCardPart(header textproto.MIMEHeader, mediaType string) bool {
	switch strings.ToLower(mediaType) {
	case "text/vcard", "text/x-vcard", "text/directory":
		return true
	}
	for _, headerName := range []string{"Content-Disposition", "Content-Type"} {
		if _, params, err := mime.ParseMediaType(header.Get(headerName)); err == nil {
			for _, key := range []string{"filename", "name"} {
				if name := params[key]; name != "" && strings.EqualFold(path.Ext(name), ".vcf") {
					return true
				}
			}
		}
	}
	return false
}

func decodeTransferEncoding(encoding string, body []byte) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "7bit", "8bit", "binary":
		return body, nil
	case "quoted-printable":
		return io.ReadAll(quotedprintable.NewReader(bytes.NewReader(body)))
	case "base64":
		clean := strings.ReplaceAll(string(body), "\r", "")
		clean = strings.ReplaceAll(clean, "\n", "")
		decoded, err := base64.StdEncoding.DecodeString(clean)
		if err != nil {
			return body, nil
		}
		return decoded, nil
	default:
		return body, nil
	}
}

func buildShareMessage(from string, input ShareInput, messageID string) []byte {
	subject := sanitizeHeader(input.Subject)
	if subject == "" {
		subject = "Contact card"
	}
	filename := strings.TrimSpace(input.Filename)
	if filename == "" {
		filename = "contact.vcf"
	}
	textBody := strings.TrimSpace(input.TextBody)
	if textBody == "" {
		textBody = "Contact card attached."
	}

	boundary := fmt.Sprintf("vcardbox-%d", time.Now().UnixNano())
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", strings.Join(uniqueRecipients(input.To), ", ")),
		fmt.Sprintf("Subject: %s", subject),
		fmt.Sprintf("Date: %s", time.Now().Format(time.RFC1123Z)),
		fmt.Sprintf("Message-ID: %s", messageID),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q", boundary),
	}
	if cc := uniqueRecipients(input.Cc); len(cc) > 0 {
		headers = append(headers, fmt.Sprintf("Cc: %s", strings.Join(cc, ", ")))
	}

	var builder strings.Builder
	builder.WriteString(strings.Join(headers, "\r\n"))
	builder.WriteString("\r\n\r\n")
	builder.WriteString("--" + boundary + "\r\n")
	builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	builder.WriteString(textBody)
	builder.WriteString("\r\n")
	builder.WriteString("--" + boundary + "\r\n")
	builder.WriteString(fmt.Sprintf("Content-Type: text/vcard; charset=UTF-8; name=%q\r\n", filename))
	builder.WriteString("Content-Transfer-Encoding: base64\r\n")
	builder.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", filename))
	builder.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(input.CardData)))
	builder.WriteString("\r\n")
	builder.WriteString("--" + boundary + "--\r\n")
	return []byte(builder.String())
}

func wrapBase64(encoded string) string {
	const width = 76
	var builder strings.Builder
	for len(encoded) > width {
		builder.WriteString(encoded[:width])
		builder.WriteString("\r\n")
		encoded = encoded[width:]
	}
	builder.WriteString(encoded)
	return builder.String()
}

func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}

func uniqueRecipients(groups ...[]string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, 8)
	for _, group := range groups {
		for _, recipient := range group {
			recipient = strings.TrimSpace(recipient)
			if recipient == "" {
				continue
			}
			if _, ok := seen[recipient]; ok {
				continue
			}
			seen[recipient] = struct{}{}
			out = append(out, recipient)
		}
	}
	return out
}

func generateMessageID(address string) string {
	domain := "localhost"
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		domain = address[at+1:]
	}
	return fmt.Sprintf("<%d.%s>", time.Now().UnixNano(), domain)
}

func connectIMAP(account Account) (*client.Client, error) {
	host, _, err := net.SplitHostPort(account.IMAPAddr)
	if err != nil {
		return nil, fmt.Errorf("mailbox: invalid IMAP address %q: %w", account.IMAPAddr, err)
	}
	imapClient, err := client.DialTLS(account.IMAPAddr, &tls.Config{ServerName: host})
	if err != nil {
		return nil, fmt.Errorf("mailbox: IMAP dial failed: %w", err)
	}
	if err := imapClient.Login(account.Address, account.Password); err != nil {
		imapClient.Logout()
		return nil, fmt.Errorf("mailbox: IMAP login failed: %w", err)
	}
	return imapClient, nil
}

func connectSMTP(account Account) (*smtp.Client, error) {
	host, _, err := net.SplitHostPort(account.SMTPAddr)
	if err != nil {
		return nil, fmt.Errorf("mailbox: invalid SMTP address %q: %w", account.SMTPAddr, err)
	}
	conn, err := tls.Dial("tcp", account.SMTPAddr, &tls.Config{ServerName: host})
	if err != nil {
		return nil, fmt.Errorf("mailbox: SMTP TLS dial failed: %w", err)
	}
	smtpClient := smtp.NewClient(conn)
	auth := sasl.NewPlainClient("", account.Address, account.Password)
	if err := smtpClient.Auth(auth); err != nil {
		smtpClient.Close()
		return nil, fmt.Errorf("mailbox: SMTP auth failed: %w", err)
	}
	return smtpClient, nil
}
