package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTempCfg перенастраивает пользовательский конфиг‑каталог в temp для изоляции тестов.
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestAuthFSStore_SaveLoad_Token_TrimsWhitespace(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	require.NoError(t, st.Save("tok-123\n\n"))

	// Дозапишем вручную лишние пробелы в конец файла
	p, err := tokenPath()
	require.NoError(t, err)
	f, err := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, _ = f.WriteString("  \r\n")
	_ = f.Close()

	tok, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}

func TestAuthFSStore_Load_TokenMissingOrEmpty(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}

	_, err := st.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	p, _ := tokenPath()
	_ = os.MkdirAll(filepath.Dir(p), 0o700)
	_ = os.WriteFile(p, []byte(" \n"), 0o600)
	_, err = st.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	assert.Error(t, st.Save(""))
}

func TestAuthFSStore_Login_And_Clear(t *testing.T) {
	dir := setTempCfg(t)
	st := AuthFSStore{}

	assert.Error(t, st.SaveLogin(""))
	require.NoError(t, st.SaveLogin("anna"))
	require.NoError(t, st.Save("tok"))

	login, err := st.LoadLogin()
	require.NoError(t, err)
	assert.Equal(t, "anna", login)

	if runtime.GOOS != "windows" {
		_, err = os.Stat(filepath.Join(dir, "JewelryStore", "auth_token"))
		require.NoError(t, err)
	}

	require.NoError(t, st.Clear())
	_, err = st.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = st.LoadLogin()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// повторная очистка не падает
	require.NoError(t, st.Clear())
}
