package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/i18n"
	"github.com/and161185/kid-clinic/internal/model"
	"github.com/and161185/kid-clinic/internal/otp"
	"github.com/and161185/kid-clinic/internal/prefs"
	"github.com/and161185/kid-clinic/internal/session"
	"github.com/and161185/kid-clinic/internal/validate"
)

// screenError is a localized message for the user; the cause is logged, not printed.
type screenError struct {
	msg   string
	cause error
}

func (e *screenError) Error() string { return e.msg }
func (e *screenError) Unwrap() error { return e.cause }

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// outcomeError maps a non-successful outcome onto a localized message.
// failKey is used for generic failures.
func outcomeError(lang string, o session.Outcome, failKey i18n.Key) error {
	switch o.Kind {
	case session.Success:
		return nil
	case session.ValidationFailed:
		return &screenError{msg: formatFieldErrors(o.FieldErrors), cause: o.Err}
	case session.Unauthorized:
		if o.Status == 0 {
			return &screenError{msg: i18n.Resolve(lang, i18n.KeyTokenMissing), cause: o.Err}
		}
		return &screenError{msg: i18n.Resolve(lang, i18n.KeyUnauthorized), cause: o.Err}
	case session.NetworkError:
		return &screenError{msg: i18n.Resolve(lang, i18n.KeyNetworkError), cause: o.Err}
	default:
		if errors.Is(o.Err, errs.ErrUnexpectedResponse) {
			return &screenError{msg: i18n.Resolve(lang, i18n.KeyUnexpectedResponse), cause: o.Err}
		}
		return &screenError{msg: i18n.Resolve(lang, failKey), cause: o.Err}
	}
}

func formatFieldErrors(fe validate.Errors) string {
	lines := make([]string, 0, len(fe))
	for _, f := range fe.Fields() {
		if f == session.RawErrorKey {
			lines = append(lines, fe[f])
			continue
		}
		lines = append(lines, f+": "+fe[f])
	}
	return strings.Join(lines, "\n")
}

func (a *app) cmdLang(ctx context.Context, args []string) error {
	fs := newFlagSet("lang", a.errOut)
	set := fs.String("set", "", "language code (en, ar, ur)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *set != "" {
		code := i18n.Normalize(*set)
		if err := <-prefs.SetAsync(ctx, a.store, prefs.KeyLanguage, string(code)); err != nil {
			return err
		}
	}

	current := a.language(ctx)
	fmt.Fprintf(a.out, "%s:\n", i18n.Resolve(current, i18n.KeyLanguage))
	for _, l := range i18n.Languages() {
		mark := " "
		if string(l.Code) == current {
			mark = "*"
		}
		fmt.Fprintf(a.out, " %s %s (%s)\n", mark, l.Label, l.Code)
	}
	return nil
}

func (a *app) cmdToken(ctx context.Context, args []string) error {
	fs := newFlagSet("token", a.errOut)
	set := fs.String("set", "", "access token to store")
	clr := fs.Bool("clear", false, "remove the stored token")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	switch {
	case *clr:
		if err := a.store.Delete(ctx, prefs.KeyAccessToken); err != nil {
			return err
		}
	case strings.TrimSpace(*set) != "":
		if err := a.store.Set(ctx, prefs.KeyAccessToken, strings.TrimSpace(*set)); err != nil {
			return err
		}
	default:
		return errUsage
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	lang := a.language(ctx)
	tok, ok := prefs.Token(ctx, a.store)
	if !ok {
		return &screenError{msg: i18n.Resolve(lang, i18n.KeyTokenMissing), cause: errs.ErrUnauthorized}
	}
	info, err := session.InspectToken(tok)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "subject: %s\n", info.Subject)
	if !info.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "expires: %s\n", info.ExpiresAt.UTC().Format(time.RFC3339))
		fmt.Fprintf(a.out, "expired: %t\n", info.Expired(time.Now()))
	}
	return nil
}

func (a *app) cmdLabels(ctx context.Context) error {
	lang := a.language(ctx)
	r := i18n.New()
	keys := r.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Fprintf(a.out, "%-32s %s\n", k, r.Resolve(lang, k))
	}
	return nil
}

type registrationFlags struct {
	name, email, phone, password *string
}

func bindRegistration(fs *flag.FlagSet) registrationFlags {
	return registrationFlags{
		name:     fs.String("name", "", "full name"),
		email:    fs.String("email", "", "email"),
		phone:    fs.String("phone", "", "phone number"),
		password: fs.String("password", "", "password"),
	}
}

func (f registrationFlags) value() model.Registration {
	return model.Registration{
		FullName:    strings.TrimSpace(*f.name),
		Email:       strings.TrimSpace(*f.email),
		PhoneNumber: strings.TrimSpace(*f.phone),
		Password:    *f.password,
	}
}

func (f registrationFlags) set() bool {
	r := f.value()
	return r.Email != "" || r.PhoneNumber != "" || r.FullName != ""
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := newFlagSet("register", a.errOut)
	rf := bindRegistration(fs)
	noOTP := fs.Bool("no-otp", false, "do not open the code entry screen")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	lang := a.language(ctx)
	reg := rf.value()

	msg, o := a.clinic.Register(ctx, reg)
	if err := outcomeError(lang, o, i18n.KeySubmitFailed); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %s\n", i18n.Resolve(lang, i18n.KeyOTPSent), msg.Text())
	if *noOTP {
		return nil
	}
	return a.otpScreen(ctx, lang, &reg)
}

func (a *app) cmdOTP(ctx context.Context, args []string) error {
	fs := newFlagSet("otp", a.errOut)
	rf := bindRegistration(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	var reg *model.Registration
	if rf.set() {
		r := rf.value()
		reg = &r
	}
	return a.otpScreen(ctx, a.language(ctx), reg)
}

func (a *app) cmdVerify(ctx context.Context, args []string) error {
	fs := newFlagSet("verify", a.errOut)
	code := fs.String("code", "", "6-digit code")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	lang := a.language(ctx)

	e := otp.NewEntry()
	if !e.Paste(*code) {
		return &screenError{msg: i18n.Resolve(lang, i18n.KeyOTPIncomplete), cause: errs.ErrIncompleteCode}
	}
	flow := otp.NewFlow(a.verifyFunc(), nil)
	flow.Entry = e
	o, err := flow.Submit(ctx)
	if err != nil {
		return err
	}
	if err := outcomeError(lang, o, i18n.KeySubmitFailed); err != nil {
		return err
	}
	fmt.Fprintln(a.out, i18n.Resolve(lang, i18n.KeyOTPVerified))
	return nil
}

func (a *app) verifyFunc() otp.VerifyFunc {
	return func(ctx context.Context, code string) session.Outcome {
		_, o := a.clinic.VerifyOTP(ctx, code)
		return o
	}
}

func (a *app) cmdAddKid(ctx context.Context, args []string) error {
	fs := newFlagSet("add-kid", a.errOut)
	name := fs.String("name", "", "full name as on the UAE ID")
	nid := fs.String("national-id", "", "UAE ID number")
	urn := fs.String("urn", "", "URN number")
	sex := fs.String("sex", i18n.NoneValue, "MALE|FEMALE")
	nationality := fs.String("nationality", i18n.NoneValue, "ISO3 nationality code")
	insurance := fs.String("insurance", i18n.NoneValue, "insurance company code")
	insNumber := fs.String("insurance-number", "", "insurance number")
	dob := fs.String("dob", "", "date of birth YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	lang := a.language(ctx)

	values := map[string]string{
		model.FieldFullName:        *name,
		model.FieldNationalID:      *nid,
		model.FieldURN:             *urn,
		model.FieldSex:             strings.ToUpper(strings.TrimSpace(*sex)),
		model.FieldNationality:     strings.ToUpper(strings.TrimSpace(*nationality)),
		model.FieldInsurance:       strings.TrimSpace(*insurance),
		model.FieldInsuranceNumber: *insNumber,
		model.FieldDateOfBirth:     *dob,
	}
	if fe := validate.ValidateLocalized(lang, values, validate.ChildForm()); !fe.OK() {
		return &screenError{msg: formatFieldErrors(fe), cause: fe.Err()}
	}

	child, o := a.clinic.AddChild(ctx, model.ChildFromForm(values))
	if o.Kind == session.ValidationFailed {
		fe := validate.Errors{}.Merge(o.FieldErrors)
		msg := formatFieldErrors(fe)
		_, nidTaken := fe[model.FieldNationalID]
		_, urnTaken := fe[model.FieldURN]
		if nidTaken || urnTaken {
			msg = i18n.Resolve(lang, i18n.KeyChildDuplicate) + "\n" + msg
		}
		return &screenError{msg: msg, cause: o.Err}
	}
	if err := outcomeError(lang, o, i18n.KeySubmitFailed); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (#%d)\n", i18n.Resolve(lang, i18n.KeyChildAdded), child.ID)
	return nil
}

func (a *app) cmdNotifications(ctx context.Context) error {
	lang := a.language(ctx)
	list, o := a.clinic.Notifications(ctx)
	if err := outcomeError(lang, o, i18n.KeyFetchFailed); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%d)\n", i18n.Resolve(lang, i18n.KeyNotifications), len(list))
	for _, n := range list {
		mark := " "
		if n.IsRead {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] #%d %s: %s\n", mark, n.ID, n.Title, n.Body)
	}
	return nil
}

func (a *app) cmdRead(ctx context.Context, args []string) error {
	fs := newFlagSet("read", a.errOut)
	id := fs.Int64("id", 0, "notification id")
	if err := fs.Parse(args); err != nil || *id <= 0 {
		return errUsage
	}
	lang := a.language(ctx)
	o := a.clinic.MarkNotificationRead(ctx, *id)
	if err := outcomeError(lang, o, i18n.KeyMarkReadFailed); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) childFlag(name string, args []string) (int64, error) {
	fs := newFlagSet(name, a.errOut)
	child := fs.Int64("child", 0, "child id")
	if err := fs.Parse(args); err != nil || *child <= 0 {
		return 0, errUsage
	}
	return *child, nil
}

func (a *app) cmdVaccinations(ctx context.Context, args []string) error {
	child, err := a.childFlag("vaccinations", args)
	if err != nil {
		return err
	}
	lang := a.language(ctx)
	list, o := a.clinic.Vaccinations(ctx, child)
	if err := outcomeError(lang, o, i18n.KeyFetchFailed); err != nil {
		return err
	}
	fmt.Fprintln(a.out, i18n.Resolve(lang, i18n.KeyVaccination))
	fmt.Fprintf(a.out, "%-24s %s\n", i18n.Resolve(lang, i18n.KeyName), i18n.Resolve(lang, i18n.KeyDate))
	for _, v := range list {
		fmt.Fprintf(a.out, "%-24s %s\n", v.Name, v.Date)
	}
	return nil
}

func (a *app) cmdPrecautions(ctx context.Context, args []string) error {
	child, err := a.childFlag("precautions", args)
	if err != nil {
		return err
	}
	lang := a.language(ctx)
	docs, o := a.clinic.PrescriptionDocuments(ctx, child)
	if err := outcomeError(lang, o, i18n.KeyFetchFailed); err != nil {
		return err
	}
	fmt.Fprintln(a.out, i18n.Resolve(lang, i18n.KeyPrecautions))
	for _, d := range docs {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("#%d", d.ID)
		}
		fmt.Fprintf(a.out, "%s %s\n", name, d.URL)
	}
	return nil
}
