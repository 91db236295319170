package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/i18n"
	"github.com/and161185/kid-clinic/internal/lifecycle"
	"github.com/and161185/kid-clinic/internal/model"
	"github.com/and161185/kid-clinic/internal/otp"
	"github.com/and161185/kid-clinic/internal/session"
)

// otpScreen reads one command per line: a digit, a pasted code, "-" for backspace,
// "resend", "submit" or "quit". It returns nil once the code is verified or input ends.
// Resend is only available when reg is known.
func (a *app) otpScreen(ctx context.Context, lang string, reg *model.Registration) error {
	scope := lifecycle.New(ctx, a.log)
	defer scope.Close()

	say := func(format string, args ...any) {
		scope.Deliver(func() { fmt.Fprintf(a.out, format+"\n", args...) })
	}

	var resend otp.ResendFunc
	if reg != nil {
		r := *reg
		resend = func(ctx context.Context) session.Outcome {
			_, o := a.clinic.Register(ctx, r)
			return o
		}
	}
	cooldown := otp.NewCooldown(otp.CooldownSeconds, func() {
		say("%s", i18n.Resolve(lang, i18n.KeyOTPResend))
	})
	defer cooldown.Stop()
	flow := otp.NewFlow(a.verifyFunc(), resend, otp.WithCooldown(cooldown))

	scope.Go(func(ctx context.Context) { cooldown.Run(ctx, a.tick) })

	// The reader is not owned by the scope: a blocked read on a terminal cannot be interrupted.
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(a.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-scope.Context().Done():
				return
			}
		}
	}()

	say("%s", i18n.Resolve(lang, i18n.KeyOTPTitle))
	say("%s", renderOTP(lang, flow))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			done, err := a.otpStep(scope.Context(), lang, flow, strings.TrimSpace(line), resend != nil, say)
			if done {
				return err
			}
		}
	}
}

func (a *app) otpStep(ctx context.Context, lang string, flow *otp.Flow, line string, canResend bool, say func(string, ...any)) (bool, error) {
	switch {
	case line == "":
		return false, nil
	case line == "quit" || line == "q":
		return true, nil
	case line == "-":
		flow.Entry.Backspace(flow.Entry.Focus())
	case line == "resend":
		if !canResend {
			say("%s", i18n.Resolve(lang, i18n.KeyOTPResendFailed))
			return false, nil
		}
		o, err := flow.Resend(ctx)
		switch {
		case errors.Is(err, errs.ErrCooldownActive):
			say("%s (%s)", i18n.Resolve(lang, i18n.KeyOTPWait), i18n.Resolvef(lang, i18n.KeyOTPResendIn, flow.Cooldown.Remaining()))
			return false, nil
		case o.OK():
			say("%s", i18n.Resolve(lang, i18n.KeyOTPSent))
		default:
			say("%s: %v", i18n.Resolve(lang, i18n.KeyOTPResendFailed), outcomeError(lang, o, i18n.KeyOTPResendFailed))
		}
	case line == "submit":
		o, err := flow.Submit(ctx)
		if errors.Is(err, errs.ErrIncompleteCode) {
			say("%s", i18n.Resolve(lang, i18n.KeyOTPIncomplete))
			return false, nil
		}
		if o.OK() {
			say("%s", i18n.Resolve(lang, i18n.KeyOTPVerified))
			return true, nil
		}
		say("%v", outcomeError(lang, o, i18n.KeySubmitFailed))
		return false, nil
	case len(line) == otp.Length:
		if !flow.Entry.Paste(line) {
			say("%s", i18n.Resolve(lang, i18n.KeyOTPIncomplete))
			return false, nil
		}
	default:
		if !flow.Entry.EnterDigit(flow.Entry.Focus(), line) {
			say("?")
			return false, nil
		}
	}
	say("%s", renderOTP(lang, flow))
	return false, nil
}

func renderOTP(lang string, flow *otp.Flow) string {
	digits := flow.Entry.Digits()
	for i, d := range digits {
		if d == "" {
			digits[i] = "_"
		}
	}
	status := i18n.Resolve(lang, i18n.KeyOTPResend)
	if !flow.Cooldown.Ready() {
		status = i18n.Resolvef(lang, i18n.KeyOTPResendIn, flow.Cooldown.Remaining())
	}
	return fmt.Sprintf("[%s]  %s", strings.Join(digits, " "), status)
}
