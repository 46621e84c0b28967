// Package notifications composes customer contact channels: WhatsApp deep
// links and (simulated) email delivery.
package notifications

import (
	"errors"
	"net/url"
	"strings"

	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/ttacon/libphonenumber"
)

var ErrInvalidPhone = errors.New("invalid phone number")

const waBaseURL = "https://wa.me/"

// WhatsAppLinker builds https://wa.me/<E.164 digits>?text=<message> links.
// Numbers without a country code are read in the default region.
type WhatsAppLinker struct {
	region string
}

var _ interfaces.IWhatsAppLinker = (*WhatsAppLinker)(nil)

func NewWhatsAppLinker(defaultRegion string) *WhatsAppLinker {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = "BR"
	}
	return &WhatsAppLinker{region: region}
}

func (l *WhatsAppLinker) Link(phone string, text string) (string, error) {
	num, err := libphonenumber.Parse(strings.TrimSpace(phone), l.region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	digits := strings.TrimPrefix(libphonenumber.Format(num, libphonenumber.E164), "+")

	link := waBaseURL + digits
	if text != "" {
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link, nil
}
