package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assistant/addressbook"
	"assistant/errs"
)

var errMissingArgs = errs.Errorf(errs.EMISSINGARGS, "not enough arguments")

func (c *CLI) dispatch(ctx context.Context, command string, args []string) string {
	var (
		reply string
		err   error
	)

	switch command {
	case "hello":
		reply = "How can I help you?"
	case "add":
		reply, err = c.addContact(ctx, args)
	case "change":
		reply, err = c.changePhone(ctx, args)
	case "phone":
		reply, err = c.showPhone(ctx, args)
	case "remove-phone":
		reply, err = c.removePhone(ctx, args)
	case "all":
		reply, err = c.showAll(ctx)
	case "add-birthday":
		reply, err = c.addBirthday(ctx, args)
	case "show-birthday":
		reply, err = c.showBirthday(ctx, args)
	case "birthdays":
		reply, err = c.birthdays(ctx)
	case "delete":
		reply, err = c.deleteContact(ctx, args)
	default:
		reply = "Invalid command."
	}

	if err != nil {
		return errorReply(err)
	}
	return reply
}

// errorReply turns a service error into the user-facing message. Matching
// is exhaustive over the error codes the service can produce.
func errorReply(err error) string {
	switch errs.ErrorCode(err) {
	case errs.EMISSINGARGS:
		return "Not enough arguments. Try again."
	case errs.ENOTFOUND:
		if errors.Is(err, addressbook.ErrContactNotFound) {
			return "This contact does not exist."
		}
		return errs.ErrorMessage(err)
	case errs.EINVALID:
		return errs.ErrorMessage(err)
	default:
		return "Invalid input. Check arguments."
	}
}

func (c *CLI) addContact(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errMissingArgs
	}

	created, err := c.svc.AddContact(ctx, args[0], args[1])
	if err != nil {
		return "", err
	}
	if created {
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

func (c *CLI) changePhone(ctx context.Context, args []string) (string, error) {
	if len(args) < 3 {
		return "", errMissingArgs
	}

	if err := c.svc.ChangePhone(ctx, args[0], args[1], args[2]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func (c *CLI) showPhone(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", errMissingArgs
	}

	phones, err := c.svc.Phones(ctx, args[0])
	if err != nil {
		return "", err
	}
	if len(phones) == 0 {
		return "No phones", nil
	}

	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, "; "), nil
}

func (c *CLI) removePhone(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errMissingArgs
	}

	if err := c.svc.RemovePhone(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return "Phone removed.", nil
}

func (c *CLI) showAll(ctx context.Context) (string, error) {
	all, err := c.svc.DescribeAll(ctx)
	if err != nil {
		return "", err
	}
	if all == "" {
		return "No contacts saved.", nil
	}
	return all, nil
}

func (c *CLI) addBirthday(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", errMissingArgs
	}

	if err := c.svc.SetBirthday(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (c *CLI) showBirthday(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", errMissingArgs
	}

	birthday, set, err := c.svc.Birthday(ctx, args[0])
	if err != nil {
		return "", err
	}
	if !set {
		return "No birthday set", nil
	}
	return birthday.String(), nil
}

func (c *CLI) birthdays(ctx context.Context) (string, error) {
	upcoming, err := c.svc.UpcomingBirthdays(ctx)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return "No birthdays in the next 7 days.", nil
	}

	lines := make([]string, len(upcoming))
	for i, g := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", g.Name, g.CongratulationDate)
	}
	return strings.Join(lines, "\n"), nil
}

func (c *CLI) deleteContact(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", errMissingArgs
	}

	if err := c.svc.DeleteContact(ctx, args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}
