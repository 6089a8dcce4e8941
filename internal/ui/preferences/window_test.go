package preferences

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"fyne.io/fyne/v2/test"

	"companytime/internal/core/model"
	"companytime/internal/storage"
)

type commit struct {
	wage     string
	currency string
}

func newTestWindow(t *testing.T) (*Window, *[]commit) {
	commits := &[]commit{}
	prefs := New(test.NewTempApp(t), func(wage, currency string) {
		*commits = append(*commits, commit{wage: wage, currency: currency})
	})
	return prefs, commits
}

func TestShowPrefillsStoredText(t *testing.T) {
	prefs, _ := newTestWindow(t)
	prefs.Show("15.50", "€")

	wage, currency := prefs.Values()
	assert.Equal(t, "15.50", wage)
	assert.Equal(t, "€", currency)
}

func TestUnknownCurrencyShowsDefault(t *testing.T) {
	prefs, _ := newTestWindow(t)
	prefs.UpdateSettings(model.DefaultWage, "CHF")

	_, currency := prefs.Values()
	assert.Equal(t, "$", currency)
}

func TestBackCommitsBothValuesOnce(t *testing.T) {
	prefs, commits := newTestWindow(t)
	prefs.Show(model.DefaultWage, model.DefaultCurrency)

	prefs.wage.SetText("22.40")
	prefs.currency.SetSelected("£")
	assert.Empty(t, *commits, "edits must not be committed incrementally")

	prefs.handleBack()
	assert.Equal(t, []commit{{wage: "22.40", currency: "£"}}, *commits)
}

func TestBackHandsBackInvalidWageVerbatim(t *testing.T) {
	prefs, commits := newTestWindow(t)
	prefs.Show(model.DefaultWage, model.DefaultCurrency)

	prefs.wage.SetText("lots")
	assert.Error(t, prefs.wage.Validate())

	prefs.handleBack()
	assert.Equal(t, []commit{{wage: "lots", currency: "$"}}, *commits)
}

func TestUntouchedBackFiresNoChange(t *testing.T) {
	store := storage.NewStore(storage.NewYAMLBackend(filepath.Join(t.TempDir(), "settings.yaml")))
	store.Write("15.50", "€")

	var changes []storage.Change
	subscription := store.Subscribe(func(change storage.Change) {
		changes = append(changes, change)
	})
	defer subscription.Close()

	prefs := New(test.NewTempApp(t), store.Write)
	prefs.Show(store.ReadRaw())
	prefs.handleBack()

	assert.Empty(t, changes)
	wage, currency := store.ReadRaw()
	assert.Equal(t, "15.50", wage)
	assert.Equal(t, "€", currency)
}

func TestWageValidator(t *testing.T) {
	prefs, _ := newTestWindow(t)
	for _, valid := range []string{"7.25", "15.50", "1"} {
		prefs.wage.SetText(valid)
		assert.NoError(t, prefs.wage.Validate(), valid)
	}
	for _, invalid := range []string{"", "0", "-1", "abc"} {
		prefs.wage.SetText(invalid)
		assert.ErrorIs(t, prefs.wage.Validate(), errInvalidWage, invalid)
	}
}
