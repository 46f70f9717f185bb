package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/addressbook/internal/domain"
)

// Command names.
const (
	cmdHello        = "hello"
	cmdAdd          = "add"
	cmdChange       = "change"
	cmdPhone        = "phone"
	cmdRemovePhone  = "remove-phone"
	cmdAll          = "all"
	cmdAddBirthday  = "add-birthday"
	cmdShowBirthday = "show-birthday"
	cmdBirthdays    = "birthdays"
	cmdDelete       = "delete"
	cmdSave         = "save"
	cmdStats        = "stats"
	cmdClose        = "close"
	cmdExit         = "exit"
)

// Replies.
const (
	msgWelcome         = "Welcome to the assistant bot!"
	msgPrompt          = "Enter a command: "
	msgHello           = "How can I help you?"
	msgContactAdded    = "Contact added."
	msgContactUpdated  = "Contact updated."
	msgNoPhones        = "No phones."
	msgPhoneRemoved    = "Phone removed."
	msgPhoneMissing    = "Phone not found."
	msgBirthdayAdded   = "Birthday added."
	msgBirthdayNotSet  = "Birthday is not set."
	msgNoBirthdaysFmt  = "No birthdays in the next %d days."
	msgContactDeleted  = "Contact deleted."
	msgSaved           = "Saved."
	msgGoodBye         = "Good bye!"
	msgInvalidCommand  = "Invalid command."
	msgNoCommandsSoFar = "No commands handled yet."
)

type handlerFunc func(b *Bot, ctx context.Context, args []string) (string, error)

// handlers maps every command except close/exit, which end the session.
var handlers = map[string]handlerFunc{
	cmdHello:        (*Bot).hello,
	cmdAdd:          (*Bot).addContact,
	cmdChange:       (*Bot).changePhone,
	cmdPhone:        (*Bot).showPhones,
	cmdRemovePhone:  (*Bot).removePhone,
	cmdAll:          (*Bot).showAll,
	cmdAddBirthday:  (*Bot).addBirthday,
	cmdShowBirthday: (*Bot).showBirthday,
	cmdBirthdays:    (*Bot).upcomingBirthdays,
	cmdDelete:       (*Bot).deleteContact,
	cmdSave:         (*Bot).save,
	cmdStats:        (*Bot).stats,
}

// ParseInput splits a line on whitespace. The command word is lower-cased;
// arguments are returned as typed. A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

func (b *Bot) hello(_ context.Context, _ []string) (string, error) {
	return msgHello, nil
}

// addContact appends a phone, creating the contact when it does not exist.
// The phone is validated before anything is created.
func (b *Bot) addContact(_ context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", usageError(cmdAdd)
	}
	name, phone := args[0], args[1]

	if rec, ok := b.book.Find(name); ok {
		if _, err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return msgContactUpdated, nil
	}

	rec, err := domain.NewRecord(name)
	if err != nil {
		return "", err
	}
	if _, err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	b.book.AddRecord(rec)
	return msgContactAdded, nil
}

func (b *Bot) changePhone(_ context.Context, args []string) (string, error) {
	if len(args) < 3 {
		return "", usageError(cmdChange)
	}
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return msgContactUpdated, nil
}

func (b *Bot) showPhones(_ context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", usageError(cmdPhone)
	}
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}

	phones := rec.Phones()
	if len(phones) == 0 {
		return msgNoPhones, nil
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, ", "), nil
}

func (b *Bot) removePhone(_ context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", usageError(cmdRemovePhone)
	}
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if !rec.RemovePhone(args[1]) {
		return msgPhoneMissing, nil
	}
	return msgPhoneRemoved, nil
}

func (b *Bot) showAll(_ context.Context, _ []string) (string, error) {
	return b.book.String(), nil
}

// addBirthday sets a birthday, creating the contact when it does not exist.
func (b *Bot) addBirthday(_ context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", usageError(cmdAddBirthday)
	}
	name, raw := args[0], args[1]

	if rec, ok := b.book.Find(name); ok {
		if _, err := rec.SetBirthday(raw); err != nil {
			return "", err
		}
		return msgBirthdayAdded, nil
	}

	rec, err := domain.NewRecord(name)
	if err != nil {
		return "", err
	}
	if _, err := rec.SetBirthday(raw); err != nil {
		return "", err
	}
	b.book.AddRecord(rec)
	return msgBirthdayAdded, nil
}

func (b *Bot) showBirthday(_ context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", usageError(cmdShowBirthday)
	}
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	bday, ok := rec.Birthday()
	if !ok {
		return msgBirthdayNotSet, nil
	}
	return bday.String(), nil
}

func (b *Bot) upcomingBirthdays(_ context.Context, args []string) (string, error) {
	days := b.birthdays.DefaultWindow()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", usageError(cmdBirthdays)
		}
		days = n
	}

	entries, err := b.birthdays.Upcoming(b.book, days, b.now())
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return fmt.Sprintf(msgNoBirthdaysFmt, days), nil
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) deleteContact(_ context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", usageError(cmdDelete)
	}
	if !b.book.Delete(args[0]) {
		return "", fmt.Errorf("%w: %s", domain.ErrContactNotFound, args[0])
	}
	return msgContactDeleted, nil
}

func (b *Bot) save(ctx context.Context, _ []string) (string, error) {
	if err := b.store.Save(ctx, b.book); err != nil {
		return "", err
	}
	return msgSaved, nil
}

func (b *Bot) stats(_ context.Context, _ []string) (string, error) {
	var sb strings.Builder
	b.metrics.WritePrometheus(&sb)
	out := strings.TrimRight(sb.String(), "\n")
	if out == "" {
		return msgNoCommandsSoFar, nil
	}
	return out, nil
}

func (b *Bot) find(name string) (*domain.Record, error) {
	rec, ok := b.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrContactNotFound, name)
	}
	return rec, nil
}
