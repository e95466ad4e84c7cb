package entity

import (
	"encoding/json"

	"walletauth/internal/errors"
)

// WizardKind names which wizard owns the current step.
type WizardKind string

const (
	WizardLogin   WizardKind = "login"
	WizardRecover WizardKind = "recover"
)

// WizardStep holds either a login step or a recovery step, never both.
// The zero value means no flow has started.
type WizardStep struct {
	kind    WizardKind
	login   LoginStep
	recover RecoverStep
}

// LoginWizard places the session on a login step.
func LoginWizard(step LoginStep) (WizardStep, error) {
	if !step.Valid() {
		return WizardStep{}, errors.Wrapf(ErrInvalidEnumValue, "login step %q", step)
	}

	return WizardStep{kind: WizardLogin, login: step}, nil
}

// RecoveryWizard places the session on a recovery step.
func RecoveryWizard(step RecoverStep) (WizardStep, error) {
	if !step.Valid() {
		return WizardStep{}, errors.Wrapf(ErrInvalidEnumValue, "recover step %q", step)
	}

	return WizardStep{kind: WizardRecover, recover: step}, nil
}

func (w WizardStep) Started() bool {
	return w.kind != ""
}

func (w WizardStep) Kind() WizardKind {
	return w.kind
}

// LoginStep returns the active login step, if the login wizard is active.
func (w WizardStep) LoginStep() (LoginStep, bool) {
	return w.login, w.kind == WizardLogin
}

// RecoverStep returns the active recovery step, if the recovery wizard is active.
func (w WizardStep) RecoverStep() (RecoverStep, bool) {
	return w.recover, w.kind == WizardRecover
}

type wizardStepJSON struct {
	Wizard WizardKind `json:"wizard"`
	Step   string     `json:"step"`
}

func (w WizardStep) MarshalJSON() ([]byte, error) {
	var out wizardStepJSON
	switch w.kind {
	case WizardLogin:
		out = wizardStepJSON{Wizard: WizardLogin, Step: w.login.String()}
	case WizardRecover:
		out = wizardStepJSON{Wizard: WizardRecover, Step: w.recover.String()}
	default:
		return []byte("null"), nil
	}

	b, err := json.Marshal(out)

	return b, errors.WithStack(err)
}

func (w *WizardStep) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*w = WizardStep{}

		return nil
	}

	var in wizardStepJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return errors.WithStack(err)
	}

	var (
		next WizardStep
		err  error
	)
	switch in.Wizard {
	case WizardLogin:
		next, err = LoginWizard(LoginStep(in.Step))
	case WizardRecover:
		next, err = RecoveryWizard(RecoverStep(in.Step))
	default:
		err = errors.Wrapf(ErrInvalidEnumValue, "wizard %q", in.Wizard)
	}
	if err != nil {
		return err
	}
	*w = next

	return nil
}
