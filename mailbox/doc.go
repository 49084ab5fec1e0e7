// Package mailbox moves contact cards in and out of an email account.
//
// Fetch searches a mailbox over IMAP, walks each message's MIME tree for
// vCard attachments (text/vcard, text/x-vcard, or a .vcf filename), and
// decodes every card found into consolidated contact records. Share sends a
// vCard file to recipients over SMTP as a base64 attachment.
//
// Credentials and server addresses come from the environment:
//
//	VCARDBOX_EMAIL         account address (also the SMTP sender)
//	VCARDBOX_PASSWORD      account password or app password
//	VCARDBOX_IMAP_ADDRESS  IMAP host:port (implicit TLS)
//	VCARDBOX_SMTP_ADDRESS  SMTP host:port (implicit TLS)
package mailbox
