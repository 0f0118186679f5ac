package cli

import (
	"bytes"
	"testing"

	"github.com/mvidalg/taskdeck/internal/domain"
	"github.com/mvidalg/taskdeck/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMFASetupCommand_PrintsSecret(t *testing.T) {
	auth := &testutil.MockAuthAPI{
		MeUser: &domain.User{Name: "Dana", Email: "dana@example.com"},
		Enrollment: &domain.MFAEnrollment{
			QRCode: "otpauth://totp/taskdeck:dana@example.com?secret=JBSWY3DP",
			Secret: "JBSWY3DP",
		},
	}
	container := newTestContainer(auth, &testutil.MockTaskAPI{})

	cmd := newMFASetupCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Secret: JBSWY3DP")
	assert.Contains(t, buf.String(), "mfa enable")
}

func TestMFASetupCommand_SkipsQRForImagePayload(t *testing.T) {
	auth := &testutil.MockAuthAPI{
		MeUser: &domain.User{Name: "Dana", Email: "dana@example.com"},
		Enrollment: &domain.MFAEnrollment{
			QRCode: "data:image/png;base64,iVBOR",
			Secret: "JBSWY3DP",
		},
	}
	container := newTestContainer(auth, &testutil.MockTaskAPI{})

	cmd := newMFASetupCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Secret: JBSWY3DP")
	assert.NotContains(t, buf.String(), "█")
}

func TestMFAEnableCommand_SendsCode(t *testing.T) {
	auth := &testutil.MockAuthAPI{
		MeUser: &domain.User{Name: "Dana", Email: "dana@example.com"},
	}
	container := newTestContainer(auth, &testutil.MockTaskAPI{})

	cmd := newMFAEnableCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--code", "123456"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "enabled")
	assert.Equal(t, []string{"123456"}, auth.EnableCodes)
}

func TestMFAEnableCommand_MalformedCodeRejectedLocally(t *testing.T) {
	auth := &testutil.MockAuthAPI{}
	container := newTestContainer(auth, &testutil.MockTaskAPI{})

	cmd := newMFAEnableCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--code", "12ab56"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidMFACode)
	assert.Empty(t, auth.EnableCodes)
}

func TestMFADisableCommand_SendsCode(t *testing.T) {
	auth := &testutil.MockAuthAPI{
		MeUser: &domain.User{Name: "Dana", Email: "dana@example.com", TwoFactorEnabled: true},
	}
	container := newTestContainer(auth, &testutil.MockTaskAPI{})

	cmd := newMFADisableCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--code", "654321"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "disabled")
	assert.Equal(t, []string{"654321"}, auth.DisableCodes)
}
