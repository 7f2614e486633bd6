package assistant

import (
	"fmt"
	"strings"

	"github.com/username/assistant-bot/internal/contacts"
)

// Replies shared by the handlers and the dispatch loop
const (
	replyInvalidCommand = "Invalid command."
	replyGoodbye        = "Good bye!"
)

// command describes one entry of the command table.
// args < 0 means any number of arguments is accepted.
type command struct {
	usage string
	args  int
	quit  bool
	run   func(a *Assistant, args []string) (string, error)
}

var commands = map[string]command{
	"hello":         {usage: "hello", args: -1, run: (*Assistant).hello},
	"add":           {usage: "add <name> <phone>", args: 2, run: (*Assistant).addContact},
	"change":        {usage: "change <name> <new_phone>", args: 2, run: (*Assistant).changeContact},
	"phone":         {usage: "phone <name>", args: 1, run: (*Assistant).showPhone},
	"all":           {usage: "all", args: 0, run: (*Assistant).showAll},
	"add-birthday":  {usage: "add-birthday <name> <DD.MM.YYYY>", args: 2, run: (*Assistant).addBirthday},
	"show-birthday": {usage: "show-birthday <name>", args: 1, run: (*Assistant).showBirthday},
	"birthdays":     {usage: "birthdays", args: 0, run: (*Assistant).showBirthdays},
	"delete":        {usage: "delete <name>", args: 1, run: (*Assistant).deleteContact},
	"close":         {usage: "close", args: -1, quit: true, run: (*Assistant).goodbye},
	"exit":          {usage: "exit", args: -1, quit: true, run: (*Assistant).goodbye},
}

// ParseInput splits a line into a lower-cased command name and its arguments.
// A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func (a *Assistant) hello(_ []string) (string, error) {
	return "How can I help you?", nil
}

func (a *Assistant) goodbye(_ []string) (string, error) {
	return replyGoodbye, nil
}

func (a *Assistant) addContact(args []string) (string, error) {
	record, err := contacts.NewRecord(args[0])
	if err != nil {
		return "", err
	}
	if err := record.AddPhone(args[1]); err != nil {
		return "", err
	}
	a.book.Add(record)
	return "Contact added.", nil
}

// changeContact replaces every phone of the contact with the new one.
// The phone is validated before anything is removed.
func (a *Assistant) changeContact(args []string) (string, error) {
	record, err := a.book.Get(args[0])
	if err != nil {
		return "", err
	}
	if _, err := contacts.NewPhone(args[1]); err != nil {
		return "", err
	}
	record.RemovePhones()
	if err := record.AddPhone(args[1]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func (a *Assistant) showPhone(args []string) (string, error) {
	record, err := a.book.Get(args[0])
	if err != nil {
		return "", err
	}
	if len(record.Phones()) == 0 {
		return "No phones saved.", nil
	}
	return record.PhoneList(), nil
}

func (a *Assistant) showAll(_ []string) (string, error) {
	if a.book.Len() == 0 {
		return "No contacts found.", nil
	}
	lines := make([]string, 0, a.book.Len())
	for name, record := range a.book.All() {
		lines = append(lines, fmt.Sprintf("%s: %s", name, record.PhoneList()))
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	record, err := a.book.Get(args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	record, err := a.book.Get(args[0])
	if err != nil {
		return "", err
	}
	birthday, ok := record.Birthday()
	if !ok {
		return "Birthday is not set.", nil
	}
	return birthday.String(), nil
}

func (a *Assistant) showBirthdays(_ []string) (string, error) {
	today := a.today()
	report := a.scheduler.Upcoming(a.book, today)
	if len(report) == 0 {
		return "No birthdays in the next week.", nil
	}

	var sb strings.Builder
	sb.WriteString("Birthdays in the next week:")
	for _, day := range report.Days(today) {
		fmt.Fprintf(&sb, "\n%s: %s", day, strings.Join(report[day], ", "))
	}
	return sb.String(), nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if _, err := a.book.Get(args[0]); err != nil {
		return "", err
	}
	a.book.Delete(args[0])
	return "Contact deleted.", nil
}
