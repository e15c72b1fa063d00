package eml_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/cid"
	"github.com/ghettovoice/vcard/eml"
)

func crlf(s string) string { return strings.ReplaceAll(s, "\n", "\r\n") }

var contactMsg = crlf(`From: john@example.com
To: jane@example.com
Subject: Contact
MIME-Version: 1.0
Content-Type: multipart/mixed; boundary="outer"

--outer
Content-Type: text/plain; charset=utf-8

See the attached contact.
--outer
Content-Type: multipart/related; boundary="inner"

--inner
Content-Type: text/x-vcard; charset=utf-8
Content-Transfer-Encoding: quoted-printable

BEGIN:VCARD
VERSION:3.0
FN:John Doe
PHOTO;VALUE=uri;TYPE=JPEG:cid:image001@example.com
LOGO;VALUE=uri:cid:missing@example.com
SOUND;VALUE=uri:cid:note@example.com
END:VCARD
--inner
Content-Type: image/jpeg
Content-ID: <image001@example.com>
Content-Transfer-Encoding: base64

/9j/4A==
--inner
Content-Type: text/plain
Content-ID: <note@example.com>

not a sound
--inner
Content-Type: image/png
Content-ID: <image001@example.com>
Content-Transfer-Encoding: base64

iVBORw==
--inner--
--outer--
`)

func TestRead(t *testing.T) {
	t.Parallel()

	msg, err := eml.Read(strings.NewReader(contactMsg), nil)
	if err != nil {
		t.Fatalf("eml.Read() error = %v, want nil", err)
	}

	parts := msg.Parts()
	gotTypes := make([]string, len(parts))
	for i, p := range parts {
		gotTypes[i] = p.MediaType
	}
	wantTypes := []string{"text/plain", "text/x-vcard", "image/jpeg", "text/plain", "image/png"}
	if diff := cmp.Diff(gotTypes, wantTypes); diff != "" {
		t.Errorf("part media types diff (-got +want):\n%v", diff)
	}
}

func TestMessage_VCardBody(t *testing.T) {
	t.Parallel()

	msg, err := eml.Read(strings.NewReader(contactMsg), nil)
	if err != nil {
		t.Fatalf("eml.Read() error = %v, want nil", err)
	}

	body, err := msg.VCardBody()
	if err != nil {
		t.Fatalf("msg.VCardBody() error = %v, want nil", err)
	}
	if !strings.HasPrefix(string(body), "BEGIN:VCARD\r\n") {
		t.Errorf("msg.VCardBody() = %q, want the vCard part", body)
	}
}

func TestMessage_VCardBody_Preference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		msg     string
		want    string
		wantErr error
	}{
		{
			"plain text only",
			crlf("Content-Type: text/plain\n\nBEGIN:VCARD\nEND:VCARD\n"),
			"BEGIN:VCARD\r\nEND:VCARD\r\n",
			nil,
		},
		{
			"no content type",
			crlf("Subject: x\n\nFN:x\n"),
			"FN:x\r\n",
			nil,
		},
		{
			"vcard before plain",
			crlf(`Content-Type: multipart/alternative; boundary=b

--b
Content-Type: text/plain

plain
--b
Content-Type: text/vcard

vcard
--b--
`),
			"vcard",
			nil,
		},
		{
			"no text part",
			crlf("Content-Type: image/gif\nContent-Transfer-Encoding: base64\n\nR0lG\n"),
			"",
			eml.ErrNoVCard,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			msg, err := eml.Read(strings.NewReader(c.msg), nil)
			if err != nil {
				t.Fatalf("eml.Read() error = %v, want nil", err)
			}
			body, err := msg.VCardBody()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("msg.VCardBody() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got := string(body); got != c.want {
				t.Errorf("msg.VCardBody() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestMessage_PartByContentID(t *testing.T) {
	t.Parallel()

	msg, err := eml.Read(strings.NewReader(contactMsg), nil)
	if err != nil {
		t.Fatalf("eml.Read() error = %v, want nil", err)
	}

	part, ok := msg.PartByContentID("image001@example.com")
	if !ok {
		t.Fatalf("msg.PartByContentID() found nothing, want the first image part")
	}
	if part.MediaType != "image/jpeg" {
		t.Errorf("part.MediaType = %q, want %q", part.MediaType, "image/jpeg")
	}
	if diff := cmp.Diff(part.Content, []byte{0xff, 0xd8, 0xff, 0xe0}); diff != "" {
		t.Errorf("part.Content diff (-got +want):\n%v", diff)
	}

	for _, id := range []cid.ContentID{"IMAGE001@example.com", "missing@example.com", ""} {
		if _, ok := msg.PartByContentID(id); ok {
			t.Errorf("msg.PartByContentID(%q) found a part, want none", id)
		}
	}
}

func TestRead_MaxPartSize(t *testing.T) {
	t.Parallel()

	_, err := eml.Read(strings.NewReader(contactMsg), &eml.ReadOptions{MaxPartSize: 8})
	if diff := cmp.Diff(err, eml.ErrPartTooLarge, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("eml.Read() error = %v, want %v\ndiff (-got +want):\n%v", err, eml.ErrPartTooLarge, diff)
	}
}

func TestResolveFromMessage(t *testing.T) {
	t.Parallel()

	msg, err := eml.Read(strings.NewReader(contactMsg), nil)
	if err != nil {
		t.Fatalf("eml.Read() error = %v, want nil", err)
	}
	body, err := msg.VCardBody()
	if err != nil {
		t.Fatalf("msg.VCardBody() error = %v, want nil", err)
	}
	card, err := vcard.Parse(body)
	if err != nil {
		t.Fatalf("vcard.Parse(body) error = %v, want nil", err)
	}

	if n := new(cid.Resolver).Resolve(card, msg); n != 1 {
		t.Errorf("resolver.Resolve(card, msg) = %d, want 1", n)
	}

	want := "BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"FN:John Doe\r\n" +
		"PHOTO;TYPE=JPEG;ENCODING=b:/9j/4A==\r\n" +
		"LOGO;VALUE=uri:cid:missing@example.com\r\n" +
		"SOUND;VALUE=uri:cid:note@example.com\r\n" +
		"END:VCARD\r\n"
	if got := card.Render(&vcard.RenderOptions{Decoded: vcard.DecodeBinaries}); got != want {
		t.Errorf("card.Render(opts) = %q, want %q", got, want)
	}
}
