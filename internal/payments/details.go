package payments

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Details is the method-specific payload of a payment.
// Implementations are limited to the types declared in this package.
type Details interface {
	Method() Method
	// Validate checks the payload structure against the current time.
	Validate(now time.Time) error
	sealed()
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// supported crypto coins, lower-case
var supportedCoins = map[string]struct{}{
	"btc":  {},
	"eth":  {},
	"usdt": {},
}

// Card is a credit/debit card payload. Number and CVV are masked on construction.
type Card struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

// NewCard masks the sensitive card fields before they are retained.
func NewCard(number, holder, expiry, cvv string) Card {
	return Card{
		Number: Mask(strings.TrimSpace(number), 4),
		Holder: strings.TrimSpace(holder),
		Expiry: strings.TrimSpace(expiry),
		CVV:    Mask(strings.TrimSpace(cvv), 0),
	}
}

func (Card) Method() Method { return MethodCard }

func (c Card) Validate(now time.Time) error {
	if n := utf8.RuneCountInString(c.CVV); n != 3 && n != 4 {
		return invalid(MethodCard, "cvv", "must have 3 or 4 digits")
	}
	validThrough, err := parseExpiry(c.Expiry, now.Location())
	if err != nil {
		return invalid(MethodCard, "expiry", err.Error())
	}
	if !now.Before(validThrough) {
		return invalid(MethodCard, "expiry", "card expired")
	}
	return nil
}

func (Card) sealed() {}

// parseExpiry parses MM/YY or MM/YYYY and returns the first instant after the
// last day of that month.
func parseExpiry(s string, loc *time.Location) (time.Time, error) {
	month, year, ok := strings.Cut(s, "/")
	if !ok {
		return time.Time{}, errExpiryFormat
	}
	mm, err := strconv.Atoi(month)
	if err != nil || len(month) > 2 {
		return time.Time{}, errExpiryFormat
	}
	yy, err := strconv.Atoi(year)
	if err != nil || (len(year) != 2 && len(year) != 4) {
		return time.Time{}, errExpiryFormat
	}
	if mm < 1 || mm > 12 {
		return time.Time{}, errExpiryMonth
	}
	if yy < 1000 {
		yy += 2000
	}
	return time.Date(yy, time.Month(mm)+1, 1, 0, 0, 0, 0, loc), nil
}

var (
	errExpiryFormat = expiryError("expected MM/YY or MM/YYYY")
	errExpiryMonth  = expiryError("month must be between 01 and 12")
)

type expiryError string

func (e expiryError) Error() string { return string(e) }

// PayPal is a wallet-login payload. The password is masked on construction.
type PayPal struct {
	Email    string
	Password string
}

// NewPayPal masks the account password before it is retained.
func NewPayPal(email, password string) PayPal {
	return PayPal{
		Email:    strings.TrimSpace(email),
		Password: Mask(password, 0),
	}
}

func (PayPal) Method() Method { return MethodPayPal }

func (p PayPal) Validate(time.Time) error {
	if !emailPattern.MatchString(p.Email) {
		return invalid(MethodPayPal, "email", "must look like name@domain.tld")
	}
	return nil
}

func (PayPal) sealed() {}

// BankTransfer moves funds between two 8-digit accounts.
type BankTransfer struct {
	Bank        string
	Source      string
	Destination string
}

func (BankTransfer) Method() Method { return MethodBankTransfer }

func (b BankTransfer) Validate(time.Time) error {
	if !isAccountNumber(b.Source) {
		return invalid(MethodBankTransfer, "source", "account must be exactly 8 digits")
	}
	if !isAccountNumber(b.Destination) {
		return invalid(MethodBankTransfer, "destination", "account must be exactly 8 digits")
	}
	return nil
}

func (BankTransfer) sealed() {}

func isAccountNumber(s string) bool {
	return len(s) == 8 && isDigits(s)
}

// Pix is a key-based instant transfer.
type Pix struct {
	Key string
}

func (Pix) Method() Method { return MethodPix }

func (p Pix) Validate(time.Time) error {
	key := strings.TrimSpace(p.Key)
	switch {
	case strings.Contains(key, "@"):
		if !emailPattern.MatchString(key) {
			return invalid(MethodPix, "key", "email key is malformed")
		}
	case isDigits(key) && (len(key) == 11 || len(key) == 14):
		// personal or business tax id
	case utf8.RuneCountInString(key) >= 8:
		// random key
	default:
		return invalid(MethodPix, "key", "must be an email, an 11/14 digit id or at least 8 characters")
	}
	return nil
}

func (Pix) sealed() {}

// Crypto pays from a wallet address in one of the supported coins.
type Crypto struct {
	Wallet string
	Coin   string
}

// NewCrypto normalizes the coin symbol to upper case.
func NewCrypto(wallet, coin string) Crypto {
	return Crypto{
		Wallet: strings.TrimSpace(wallet),
		Coin:   strings.ToUpper(strings.TrimSpace(coin)),
	}
}

func (Crypto) Method() Method { return MethodCrypto }

func (c Crypto) Validate(time.Time) error {
	if utf8.RuneCountInString(c.Wallet) < 10 {
		return invalid(MethodCrypto, "wallet", "address must have at least 10 characters")
	}
	if _, ok := supportedCoins[strings.ToLower(c.Coin)]; !ok {
		return invalid(MethodCrypto, "coin", "supported coins are BTC, ETH and USDT")
	}
	return nil
}

func (Crypto) sealed() {}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
