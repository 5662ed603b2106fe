package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/contactform/backend/internal/model"
)

func validInput() model.ContactInput {
	return model.ContactInput{
		Name:    "Jan Novak",
		Email:   "jan@example.cz",
		Phone:   "+420123456789",
		Message: "Dobry den",
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"jan.novak+form@mail.example.cz", true},
		{"UPPER_case%x@Domain-1.ORG", true},
		{"foo@bar", false},
		{"a@b.c", false},
		{"@example.com", false},
		{"jan@@example.com", false},
		{"jan novak@example.com", false},
		{"jan@example.c0m", false},
		{"jiří@example.cz", false},
		{" a@b.co", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Email(tc.in), "Email(%q)", tc.in)
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"+420123456789", true},
		{"123456789", true},
		{"123", false},
		{"+420abcdefghi", false},
		{"+42012345678", false},
		{"+4201234567890", false},
		{"1234567890", false},
		{"+421123456789", false},
		{"420123456789", false},
		{"123 456 789", false},
		{"١٢٣٤٥٦٧٨٩", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Phone(tc.in), "Phone(%q)", tc.in)
	}
}

func TestContact_TrimsFields(t *testing.T) {
	in := model.ContactInput{
		Name:    "  Jan  ",
		Email:   "\tjan@example.cz\n",
		Phone:   " 123456789 ",
		Message: "\n hello \n",
	}
	out, err := Contact(in)
	require.NoError(t, err)
	assert.Equal(t, model.ContactInput{
		Name:    "Jan",
		Email:   "jan@example.cz",
		Phone:   "123456789",
		Message: "hello",
	}, out)
}

func TestContact_RequiredBeforeFormat(t *testing.T) {
	in := validInput()
	in.Email = "not-an-email"
	in.Message = "   "

	_, err := Contact(in)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgRequired, verr.Message)
	assert.Empty(t, verr.Field)
}

func TestContact_EmailCheckedBeforePhone(t *testing.T) {
	in := validInput()
	in.Email = "foo@bar"
	in.Phone = "123"

	_, err := Contact(in)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgInvalidEmail, verr.Message)
	assert.Equal(t, "email", verr.Field)
}

func TestContact_InvalidPhone(t *testing.T) {
	in := validInput()
	in.Phone = "+420abcdefghi"

	_, err := Contact(in)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgInvalidPhone, verr.Message)
}

func TestContact_Valid(t *testing.T) {
	out, err := Contact(validInput())
	require.NoError(t, err)
	assert.Equal(t, validInput(), out)
}

var whitespace = rapid.SampledFrom([]string{"", " ", "\t", "\n", "  \r\n "})

func TestProperty_BlankFieldIsAlwaysRequiredError(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := model.ContactInput{
			Name:    rapid.String().Draw(rt, "name"),
			Email:   rapid.String().Draw(rt, "email"),
			Phone:   rapid.String().Draw(rt, "phone"),
			Message: rapid.String().Draw(rt, "message"),
		}
		blank := whitespace.Draw(rt, "blank")
		switch rapid.IntRange(0, 3).Draw(rt, "field") {
		case 0:
			in.Name = blank
		case 1:
			in.Email = blank
		case 2:
			in.Phone = blank
		case 3:
			in.Message = blank
		}

		_, err := Contact(in)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Message != MsgRequired {
			rt.Fatalf("expected required-fields error for %+v, got %v", in, err)
		}
	})
}

func TestProperty_PhoneAcceptsOnlyCzechNumbers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		digits := rapid.StringMatching(`[0-9]{9}`).Draw(rt, "digits")
		if !Phone(digits) || !Phone("+420"+digits) {
			rt.Fatalf("expected %q to be accepted with and without +420", digits)
		}

		other := rapid.String().Draw(rt, "other")
		want := len(other) == 9 && isASCIIDigits(other) ||
			len(other) == 13 && other[:4] == "+420" && isASCIIDigits(other[4:])
		if Phone(other) != want {
			rt.Fatalf("Phone(%q) = %v, want %v", other, !want, want)
		}
	})
}

func TestProperty_EmailNeedsTwoLetterTLD(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		local := rapid.StringMatching(`[a-zA-Z0-9._%+-]{1,16}`).Draw(rt, "local")
		domain := rapid.StringMatching(`[a-zA-Z0-9-]{1,16}`).Draw(rt, "domain")
		tld := rapid.StringMatching(`[a-zA-Z]{2,6}`).Draw(rt, "tld")

		if !Email(local + "@" + domain + "." + tld) {
			rt.Fatalf("expected %s@%s.%s to be valid", local, domain, tld)
		}
		if Email(local + "@" + domain + "." + tld[:1]) {
			rt.Fatalf("expected one-letter TLD to be rejected")
		}
		if Email(local + "@" + domain) {
			rt.Fatalf("expected address without TLD to be rejected")
		}
	})
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
