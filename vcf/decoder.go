package vcf

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/quotedprintable"
	"strings"

	"github.com/spachava753/vcardbox/card"
)

// Parameter names the decoder interprets itself; everything else is passed
// through to the property untouched.
const (
	paramEncoding = "ENCODING"
	paramCharset  = "CHARSET"
)

// ErrNoCard is returned by Decoder.Next when the stream holds no further
// BEGIN:VCARD block.
var ErrNoCard = errors.New("vcf: no card in stream")

// Decoder reads contact cards from a vCard stream.
//
// Each call to Next consumes one BEGIN:VCARD..END:VCARD block and returns a
// consolidated contact record built with the decoder's configuration. A
// VERSION property inside a block overrides the configured version for that
// block only.
type Decoder struct {
	r      *bufio.Reader
	cfg    card.Config
	peeked *string
}

// NewDecoder returns a decoder reading from r with the given record
// configuration.
func NewDecoder(r io.Reader, cfg card.Config) *Decoder {
	return &Decoder{r: bufio.NewReader(r), cfg: cfg}
}

// DecodeAll reads every card in the stream. A stream with no cards yields an
// empty slice, not an error.
func DecodeAll(r io.Reader, cfg card.Config) ([]*card.Contact, error) {
	d := NewDecoder(r, cfg)
	var contacts []*card.Contact
	for {
		c, err := d.Next()
		if errors.Is(err, ErrNoCard) {
			return contacts, nil
		}
		if err != nil {
			return contacts, err
		}
		contacts = append(contacts, c)
	}
}

// Next decodes the next card. It returns ErrNoCard when the stream is
// exhausted before another BEGIN:VCARD appears.
func (d *Decoder) Next() (*card.Contact, error) {
	if err := d.seekBegin(); err != nil {
		return nil, err
	}

	// Properties are buffered until END:VCARD so the block's VERSION can be
	// applied to the record configuration before dispatch starts.
	var props []*card.Property
	version := d.cfg.Version
	depth := 0
	for {
		line, err := d.logicalLine()
		if err == io.EOF {
			return nil, fmt.Errorf("vcf: unexpected end of stream inside card")
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			continue
		}

		name, params, rawValue, err := splitLine(line)
		if err != nil {
			return nil, err
		}
		switch name {
		case "BEGIN":
			if strings.EqualFold(rawValue, "VCARD") {
				// Nested cards (AGENT) are skipped wholesale.
				depth++
			}
			continue
		case "END":
			if strings.EqualFold(rawValue, "VCARD") {
				if depth == 0 {
					return d.finish(props, version)
				}
				depth--
			}
			continue
		}
		if depth > 0 {
			continue
		}
		if name == "VERSION" {
			if v := card.Version(strings.TrimSpace(rawValue)); v == card.Version21 || v == card.Version30 {
				version = v
			}
			continue
		}

		p, err := d.buildProperty(name, params, rawValue, version)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
}

func (d *Decoder) finish(props []*card.Property, version card.Version) (*card.Contact, error) {
	cfg := d.cfg
	cfg.Version = version
	c := card.New(cfg)
	for _, p := range props {
		c.AddProperty(p)
	}
	c.Consolidate()
	return c, nil
}

func (d *Decoder) seekBegin() error {
	for {
		line, err := d.logicalLine()
		if err == io.EOF {
			return ErrNoCard
		}
		if err != nil {
			return err
		}
		name, _, value, err := splitLine(line)
		if err != nil {
			// Garbage between cards is tolerated.
			continue
		}
		if name == "BEGIN" && strings.EqualFold(value, "VCARD") {
			return nil
		}
	}
}

// param is one raw parameter from the property's name section.
type param struct {
	key   string
	value string
}

// buildProperty assembles a card.Property from a split line, applying
// transfer decoding and compound value splitting.
func (d *Decoder) buildProperty(name string, params []param, rawValue string, version card.Version) (*card.Property, error) {
	p := card.NewProperty()
	p.SetName(name)

	encoding := ""
	for _, pr := range params {
		switch pr.key {
		case paramEncoding:
			encoding = strings.ToUpper(pr.value)
		case paramCharset:
			// The stream is treated as UTF-8; legacy charsets are not
			// converted.
		case card.ParamType:
			for _, token := range strings.Split(pr.value, ",") {
				if token = strings.TrimSpace(token); token != "" {
					p.AddParameter(card.ParamType, token)
				}
			}
		default:
			p.AddParameter(pr.key, pr.value)
		}
	}

	switch encoding {
	case "BASE64", "B":
		payload, err := d.collectBase64(rawValue)
		if err != nil {
			return nil, err
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("vcf: decode base64 value of %s: %w", name, err)
		}
		p.SetBytes(data)
		p.AddValue(payload)
		return p, nil
	case "QUOTED-PRINTABLE":
		decoded, err := d.decodeQuotedPrintable(rawValue)
		if err != nil {
			return nil, fmt.Errorf("vcf: decode quoted-printable value of %s: %w", name, err)
		}
		rawValue = decoded
	}

	for _, segment := range splitSegments(name, rawValue, version) {
		p.AddValue(segment)
	}
	return p, nil
}

// collectBase64 gathers a 2.1-style base64 payload that continues on the
// following physical lines until a blank line ends it. Whitespace inside the
// payload is discarded, including spaces introduced by line unfolding.
func (d *Decoder) collectBase64(first string) (string, error) {
	var builder strings.Builder
	builder.WriteString(first)
	for {
		line, err := d.peekLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			d.consumePeeked()
			break
		}
		// A new property line terminates the payload too; some exporters
		// omit the blank line.
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") && looksLikeProperty(trimmed) {
			break
		}
		builder.WriteString(trimmed)
		d.consumePeeked()
	}
	payload := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, builder.String())
	return payload, nil
}

// decodeQuotedPrintable joins soft-broken continuation lines (a trailing =)
// and decodes the result.
func (d *Decoder) decodeQuotedPrintable(first string) (string, error) {
	var encoded strings.Builder
	encoded.WriteString(first)
	for strings.HasSuffix(encoded.String(), "=") {
		line, err := d.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		encoded.WriteString("\r\n")
		encoded.WriteString(line)
	}
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(encoded.String())))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// logicalLine returns the next line with RFC folding undone: physical lines
// starting with a space or tab continue the previous one with the leading
// whitespace character removed.
func (d *Decoder) logicalLine() (string, error) {
	line, err := d.readLine()
	if err != nil {
		return "", err
	}
	for {
		next, err := d.peekLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if !strings.HasPrefix(next, " ") && !strings.HasPrefix(next, "\t") {
			break
		}
		line += next[1:]
		d.consumePeeked()
	}
	return line, nil
}

func (d *Decoder) readLine() (string, error) {
	if d.peeked != nil {
		line := *d.peeked
		d.peeked = nil
		return line, nil
	}
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *Decoder) peekLine() (string, error) {
	if d.peeked == nil {
		line, err := d.readLine()
		if err != nil {
			return "", err
		}
		d.peeked = &line
	}
	return *d.peeked, nil
}

func (d *Decoder) consumePeeked() {
	d.peeked = nil
}

// splitLine separates a logical line into an uppercase property name, its raw
// parameters, and the raw value text after the first unquoted colon.
func splitLine(line string) (string, []param, string, error) {
	nameEnd := -1
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ':':
			if !inQuotes {
				nameEnd = i
			}
		}
		if nameEnd >= 0 {
			break
		}
	}
	if nameEnd < 0 {
		return "", nil, "", fmt.Errorf("vcf: malformed line %q", line)
	}

	sections := splitUnquoted(line[:nameEnd], ';')
	name := strings.ToUpper(strings.TrimSpace(sections[0]))
	if name == "" {
		return "", nil, "", fmt.Errorf("vcf: malformed line %q", line)
	}

	var params []param
	for _, section := range sections[1:] {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		if key, value, ok := strings.Cut(section, "="); ok {
			params = append(params, param{
				key:   strings.ToUpper(strings.TrimSpace(key)),
				value: strings.Trim(strings.TrimSpace(value), `"`),
			})
		} else {
			// Bare 2.1 parameter token; it is always a type.
			params = append(params, param{key: card.ParamType, value: section})
		}
	}
	return name, params, line[nameEnd+1:], nil
}

func splitUnquoted(s string, sep byte) []string {
	var parts []string
	start := 0
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case sep:
			if !inQuotes {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// compoundProperties are split into positional segments on unescaped
// semicolons. Every other property keeps its raw value as one segment; the
// sound phonetic-name special case re-splits downstream.
var compoundProperties = map[string]bool{
	"N":   true,
	"ADR": true,
	"ORG": true,
}

func splitSegments(name, rawValue string, version card.Version) []string {
	if !compoundProperties[name] {
		return []string{rawValue}
	}
	return card.SplitValue(rawValue, version)
}

func looksLikeProperty(line string) bool {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return false
	}
	for _, r := range line[:colon] {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-' || r == ';' || r == '=' || r == ',' || r == '"' || r == ' ' || r == '\t':
		default:
			return false
		}
	}
	return true
}
