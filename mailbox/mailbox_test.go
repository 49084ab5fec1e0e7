package mailbox

import (
	"bytes"
	"encoding/base64"
	"net/textproto"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/vcardbox/card"
	"github.com/spachava753/vcardbox/vcf"
)

const sampleCard = "BEGIN:VCARD\r\nVERSION:2.1\r\nN:Doe;Jane\r\nFN:Jane Doe\r\nEND:VCARD\r\n"

func TestIsCardPart(t *testing.T) {
	header := textproto.MIMEHeader{}
	be.True(t, isCardPart(header, "text/vcard"))
	be.True(t, isCardPart(header, "text/x-vcard"))
	be.True(t, !isCardPart(header, "text/plain"))

	header = textproto.MIMEHeader{
		"Content-Disposition": []string{`attachment; filename="team.VCF"`},
	}
	be.True(t, isCardPart(header, "application/octet-stream"))

	header = textproto.MIMEHeader{
		"Content-Type": []string{`application/octet-stream; name="notes.txt"`},
	}
	be.True(t, !isCardPart(header, "application/octet-stream"))
}

func TestCollectCardPayloadsMultipart(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(sampleCard))
	raw := strings.Join([]string{
		"From: sender@example.com",
		"To: receiver@example.com",
		"Subject: contact",
		"MIME-Version: 1.0",
		`Content-Type: multipart/mixed; boundary="frontier"`,
		"",
		"--frontier",
		"Content-Type: text/plain",
		"",
		"see attachment",
		"--frontier",
		`Content-Type: text/vcard; name="jane.vcf"`,
		"Content-Transfer-Encoding: base64",
		"",
		encoded,
		"--frontier--",
		"",
	}, "\r\n")

	payloads, err := collectCardPayloads([]byte(raw))
	be.Err(t, err, nil)
	be.Equal(t, len(payloads), 1)
	be.Equal(t, string(payloads[0]), sampleCard)

	contacts, err := vcf.DecodeAll(bytes.NewReader(payloads[0]), card.Config{})
	be.Err(t, err, nil)
	be.Equal(t, len(contacts), 1)
	be.Equal(t, contacts[0].DisplayName(), "Jane Doe")
}

func TestCollectCardPayloadsPlainMessage(t *testing.T) {
	raw := strings.Join([]string{
		"From: sender@example.com",
		"Subject: hello",
		"Content-Type: text/plain",
		"",
		"no cards here",
	}, "\r\n")

	payloads, err := collectCardPayloads([]byte(raw))
	be.Err(t, err, nil)
	be.Equal(t, len(payloads), 0)
}

func TestDecodeTransferEncoding(t *testing.T) {
	decoded, err := decodeTransferEncoding("base64", []byte("aGVs\r\nbG8="))
	be.Err(t, err, nil)
	be.Equal(t, string(decoded), "hello")

	decoded, err = decodeTransferEncoding("quoted-printable", []byte("caf=C3=A9"))
	be.Err(t, err, nil)
	be.Equal(t, string(decoded), "café")

	decoded, err = decodeTransferEncoding("7bit", []byte("plain"))
	be.Err(t, err, nil)
	be.Equal(t, string(decoded), "plain")
}

func TestBuildShareMessage(t *testing.T) {
	input := ShareInput{
		To:       []string{"a@example.com", "a@example.com", "b@example.com"},
		Subject:  "Jane's card",
		CardData: []byte(sampleCard),
		Filename: "jane.vcf",
	}
	raw := buildShareMessage("me@example.com", input, "<123.example.com>")

	// The built message must round-trip through the fetch-side MIME walk.
	payloads, err := collectCardPayloads(raw)
	be.Err(t, err, nil)
	be.Equal(t, len(payloads), 1)
	be.Equal(t, string(payloads[0]), sampleCard)

	text := string(raw)
	be.True(t, strings.Contains(text, "To: a@example.com, b@example.com"))
	be.True(t, strings.Contains(text, "Subject: Jane's card"))
	be.True(t, strings.Contains(text, "Message-ID: <123.example.com>"))
	be.True(t, strings.Contains(text, `filename="jane.vcf"`))
}

func TestWrapBase64(t *testing.T) {
	wrapped := wrapBase64(strings.Repeat("A", 100))
	lines := strings.Split(wrapped, "\r\n")
	be.Equal(t, len(lines), 2)
	be.Equal(t, len(lines[0]), 76)
	be.Equal(t, len(lines[1]), 24)
}

func TestUniqueRecipients(t *testing.T) {
	out := uniqueRecipients(
		[]string{" a@example.com ", "b@example.com"},
		[]string{"a@example.com", "", "c@example.com"},
	)
	be.Equal(t, out, []string{"a@example.com", "b@example.com", "c@example.com"})
}

func TestGenerateMessageID(t *testing.T) {
	id := generateMessageID("me@example.com")
	be.True(t, strings.HasPrefix(id, "<"))
	be.True(t, strings.HasSuffix(id, ".example.com>"))

	id = generateMessageID("not-an-address")
	be.True(t, strings.HasSuffix(id, ".localhost>"))
}
