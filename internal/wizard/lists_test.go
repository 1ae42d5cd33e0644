package wizard_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-backend/internal/models"
	"client-intake-backend/internal/wizard"
)

func TestServices_Cap(t *testing.T) {
	w := wizard.New()
	for i := 0; i < wizard.MaxServices; i++ {
		require.NoError(t, w.AddService())
	}

	assert.ErrorIs(t, w.AddService(), wizard.ErrServiceLimit)
	assert.Len(t, w.Form.Services, wizard.MaxServices)
}

func TestServices_UpdateAndRemove(t *testing.T) {
	w := wizard.New()
	require.NoError(t, w.AddService())
	require.NoError(t, w.AddService())
	require.NoError(t, w.UpdateService(0, "Bread"))
	require.NoError(t, w.UpdateService(1, "Cakes"))

	require.NoError(t, w.RemoveService(0))

	require.Len(t, w.Form.Services, 1)
	assert.Equal(t, "Cakes", w.Form.Services[0].Text)
	assert.ErrorIs(t, w.UpdateService(3, "x"), wizard.ErrIndexOutOfRange)
	assert.ErrorIs(t, w.RemoveService(-1), wizard.ErrIndexOutOfRange)
}

func TestSocialLinks(t *testing.T) {
	w := wizard.New()
	require.NoError(t, w.AddSocialLink())
	require.NoError(t, w.AddSocialLink())
	require.NoError(t, w.UpdateSocialLink(1, "instagram.com/bakery"))
	require.NoError(t, w.RemoveSocialLink(0))

	assert.Equal(t, []string{"instagram.com/bakery"}, w.Form.SocialLinks)
	assert.ErrorIs(t, w.UpdateSocialLink(5, "x"), wizard.ErrIndexOutOfRange)
}

func TestToggleMood_CapLeavesSelectionUnchanged(t *testing.T) {
	w := wizard.New()
	require.NoError(t, w.ToggleMood("calm"))
	require.NoError(t, w.ToggleMood("modern"))
	require.NoError(t, w.ToggleMood("friendly"))

	err := w.ToggleMood("minimal")

	assert.ErrorIs(t, err, wizard.ErrMoodLimit)
	assert.Equal(t, []string{"calm", "modern", "friendly"}, w.Form.Moods)

	require.NoError(t, w.ToggleMood("modern"))
	require.NoError(t, w.ToggleMood("minimal"))
	assert.Equal(t, []string{"calm", "friendly", "minimal"}, w.Form.Moods)
}

func TestToggleMood_UnknownMood(t *testing.T) {
	w := wizard.New()
	assert.ErrorIs(t, w.ToggleMood("angry"), wizard.ErrUnknownOption)
}

func TestToggleContactMethod(t *testing.T) {
	w := wizard.New()
	require.NoError(t, w.ToggleContactMethod(models.ContactEmail))
	require.NoError(t, w.ToggleContactMethod(models.ContactPhone))
	require.NoError(t, w.ToggleContactMethod(models.ContactEmail))

	assert.Equal(t, []string{models.ContactPhone}, w.Form.ContactMethods)
	assert.ErrorIs(t, w.ToggleContactMethod("pigeon"), wizard.ErrUnknownOption)
}

func asset(name string) models.FileAsset {
	return models.FileAsset{Name: name, Size: 3, Type: "image/png", Data: "data:image/png;base64,AAAA"}
}

func assets(n int) []models.FileAsset {
	out := make([]models.FileAsset, n)
	for i := range out {
		out[i] = asset(fmt.Sprintf("photo-%d.png", i))
	}
	return out
}

func TestAttachLogo_ReplaceDoesNotCountTwice(t *testing.T) {
	w := wizard.New()
	require.NoError(t, w.AttachLogo(asset("a.png")))
	require.NoError(t, w.AttachLogo(asset("b.png")))

	assert.Equal(t, 1, w.Form.FileCount())
	assert.Equal(t, "b.png", w.Form.Logo.Name)

	require.NoError(t, w.RemoveLogo())
	assert.Nil(t, w.Form.Logo)
}

func TestAttachPhotos_TruncatesToTen(t *testing.T) {
	w := wizard.New()
	_, err := w.AttachPhotos(assets(8))
	require.NoError(t, err)

	dropped, err := w.AttachPhotos(assets(4))

	require.NoError(t, err)
	assert.Equal(t, 2, dropped)
	assert.Len(t, w.Form.Photos, wizard.MaxPhotos)
}

func TestAttachPhotos_AggregateCap(t *testing.T) {
	w := wizard.New()
	require.NoError(t, w.AttachLogo(asset("logo.png")))
	require.NoError(t, w.AttachStyleReference(asset("style.png")))
	for i := 0; i < 4; i++ {
		require.NoError(t, w.AddService())
		require.NoError(t, w.SetServiceImage(i, asset("svc.png")))
	}
	_, err := w.AttachPhotos(assets(9))
	require.NoError(t, err)
	require.Equal(t, wizard.MaxFiles, w.Form.FileCount())

	_, err = w.AttachPhotos(assets(1))
	assert.ErrorIs(t, err, wizard.ErrFileLimit)
	require.NoError(t, w.AddService())
	assert.ErrorIs(t, w.SetServiceImage(4, asset("svc.png")), wizard.ErrFileLimit)
	assert.Equal(t, 0, w.RemainingFiles())

	require.NoError(t, w.RemovePhoto(0))
	assert.Equal(t, 1, w.RemainingFiles())
}

func TestAttachPhotos_RejectsWholeBatchOverCap(t *testing.T) {
	w := wizard.New()
	for i := 0; i < 6; i++ {
		require.NoError(t, w.AddService())
		require.NoError(t, w.SetServiceImage(i, asset("svc.png")))
	}
	_, err := w.AttachPhotos(assets(8))
	require.NoError(t, err)

	_, err = w.AttachPhotos(assets(2))

	assert.ErrorIs(t, err, wizard.ErrFileLimit)
	assert.Len(t, w.Form.Photos, 8)
}

func TestServiceImage(t *testing.T) {
	w := wizard.New()
	assert.ErrorIs(t, w.SetServiceImage(0, asset("a.png")), wizard.ErrIndexOutOfRange)

	require.NoError(t, w.AddService())
	require.NoError(t, w.SetServiceImage(0, asset("a.png")))
	assert.Equal(t, 1, w.Form.FileCount())

	require.NoError(t, w.ClearServiceImage(0))
	assert.Equal(t, 0, w.Form.FileCount())
}
