package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/modulo-estoque/internal/application/usecase"
	"github.com/tu-usuario/modulo-estoque/internal/infrastructure/textfile"
	"github.com/tu-usuario/modulo-estoque/pkg/logger"
)

func newTestMenu(t *testing.T, script string) (*Menu, *usecase.InventoryUseCase, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	repo := textfile.NewRepository(
		filepath.Join(dir, "itens.txt"),
		filepath.Join(dir, "movimentos.txt"),
		logger.Nop(),
	)
	uc, err := usecase.NewInventoryUseCase(repo, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	m := NewMenu(uc, logger.Nop(), strings.NewReader(script), out)
	return m, uc, out, dir
}

func TestMenu_AgregarProductoYGuardarAlSalir(t *testing.T) {
	// 1 agregar → producto → datos → ENTER → 0 salvar y salir
	script := strings.Join([]string{
		"1",
		"1",
		"Parafuso",
		"Parafuso M4",
		"100",
		"http://example.com/p",
		"Ferragens",
		"",
		"0",
	}, "\n") + "\n"

	m, uc, out, dir := newTestMenu(t, script)
	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "Item 'Parafuso' adicionado com sucesso (ID 1).")
	assert.Contains(t, out.String(), "Salvando dados e saindo...")
	assert.Equal(t, 1, uc.ItemCount())

	raw, err := os.ReadFile(filepath.Join(dir, "itens.txt"))
	require.NoError(t, err, "salir guarda el archivo de items")
	assert.Equal(t, "PRODUTO;1;Parafuso;Parafuso M4;100;http://example.com/p;Ferragens\n", string(raw))
}

func TestMenu_SaidaConStockInsuficienteReportaError(t *testing.T) {
	// 7 registrar saída con más stock del disponible → ERRO → salir
	script := strings.Join([]string{
		"7",
		"1",
		"1000",
		"",
		"0",
	}, "\n") + "\n"

	m, uc, out, _ := newTestMenu(t, script)
	uc.CreateProduct("Parafuso", "M4", 70, "", "Ferragens")

	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "ERRO:")
	assert.Contains(t, out.String(), "stock insuficiente")
	assert.Equal(t, 0, uc.MovementCount())
}

func TestMenu_EntradaInvalidaReintenta(t *testing.T) {
	// "abc" no es opción válida; el prompt reintenta hasta un entero
	script := "abc\n0\n"

	m, _, out, _ := newTestMenu(t, script)
	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "Entrada invalida. Por favor, digite um numero.")
}

func TestMenu_BuscarNaInternetUsaElLinkDelItem(t *testing.T) {
	script := strings.Join([]string{
		"9",
		"1",
		"",
		"0",
	}, "\n") + "\n"

	m, uc, out, _ := newTestMenu(t, script)
	uc.CreateProduct("Parafuso", "M4", 10, "http://example.com/parafuso", "Ferragens")

	var opened string
	m.openURL = func(url string) error {
		opened = url
		return nil
	}

	require.NoError(t, m.Run())
	assert.Equal(t, "http://example.com/parafuso", opened)
	assert.Contains(t, out.String(), "Abrindo navegador com o link: http://example.com/parafuso")
}

func TestMenu_HistoricoVacio(t *testing.T) {
	script := "8\n\n0\n"

	m, _, out, _ := newTestMenu(t, script)
	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "Nenhuma movimentacao no historico.")
}

func TestMenu_EOFGuardaYSale(t *testing.T) {
	m, uc, out, dir := newTestMenu(t, "")
	uc.CreateProduct("Parafuso", "M4", 10, "", "Ferragens")

	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "Entrada interrompida (EOF). Saindo...")
	_, err := os.Stat(filepath.Join(dir, "itens.txt"))
	assert.NoError(t, err, "también con EOF se guarda antes de salir")
}
