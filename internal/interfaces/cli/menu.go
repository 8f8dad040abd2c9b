// Package cli es el menú interactivo del módulo de estoque: un shim fino de
// E/S sobre InventoryUseCase. Todo el prompting, los reintentos de entrada
// inválida y la presentación viven acá; el caso de uso nunca bloquea
// esperando entrada.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/browser"

	"github.com/tu-usuario/modulo-estoque/internal/application/usecase"
	"github.com/tu-usuario/modulo-estoque/internal/domain/entity"
	"github.com/tu-usuario/modulo-estoque/pkg/logger"
)

// Menu shell de terminal del estoque.
type Menu struct {
	uc  *usecase.InventoryUseCase
	log *logger.Logger
	in  *bufio.Scanner
	out io.Writer

	// openURL se reemplaza en tests; por defecto abre el navegador del sistema.
	openURL func(url string) error
}

// NewMenu construye el menú leyendo de in y escribiendo a out.
func NewMenu(uc *usecase.InventoryUseCase, log *logger.Logger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		uc:      uc,
		log:     log,
		in:      bufio.NewScanner(in),
		out:     out,
		openURL: browser.OpenURL,
	}
}

// Run ejecuta el loop del menú hasta la opción 0 o EOF, guardando el
// estoque antes de salir. Una falla al guardar se reporta y se loguea pero
// no tumba el programa: el estado en memoria sigue válido.
func (m *Menu) Run() error {
	for {
		m.clear()
		option, ok := m.showMenu()
		if !ok {
			fmt.Fprintln(m.out, "Entrada interrompida (EOF). Saindo...")
			break
		}
		if option == 0 {
			fmt.Fprintln(m.out, "Salvando dados e saindo...")
			break
		}

		if err := m.dispatch(option); err != nil {
			fmt.Fprintf(m.out, "ERRO: %v\n", err)
		}
		if !m.pause() {
			break
		}
	}

	if err := m.uc.Save(); err != nil {
		m.log.Error().Err(err).Msg("guardado al salir")
		fmt.Fprintf(m.out, "ERRO ao salvar: %v\n", err)
	}
	return nil
}

func (m *Menu) dispatch(option int) error {
	switch option {
	case 1:
		return m.addItem()
	case 2:
		return m.removeItem()
	case 3:
		return m.editItem()
	case 4:
		return m.locateItem()
	case 5:
		m.listItems()
	case 6:
		return m.registerInbound()
	case 7:
		return m.registerOutbound()
	case 8:
		m.showHistory()
	case 9:
		return m.openInBrowser()
	default:
		fmt.Fprintln(m.out, "Opcao invalida. Tente novamente.")
	}
	return nil
}

func (m *Menu) showMenu() (int, bool) {
	fmt.Fprintln(m.out, "=================================")
	fmt.Fprintln(m.out, "   MODULO ESTOQUE")
	fmt.Fprintln(m.out, "=================================")
	fmt.Fprintln(m.out, "1. Adicionar Item")
	fmt.Fprintln(m.out, "2. Remover Item")
	fmt.Fprintln(m.out, "3. Modificar Item")
	fmt.Fprintln(m.out, "4. Localizar Item (Mostrar)")
	fmt.Fprintln(m.out, "5. Listar Itens (Imprimir Listagem)")
	fmt.Fprintln(m.out, "6. Registrar ENTRADA")
	fmt.Fprintln(m.out, "7. Registrar SAIDA")
	fmt.Fprintln(m.out, "8. Exibir Historico de Movimentacao")
	fmt.Fprintln(m.out, "9. Buscar Item na Internet")
	fmt.Fprintln(m.out, "---------------------------------")
	fmt.Fprintln(m.out, "0. Salvar e Sair")
	fmt.Fprintln(m.out, "=================================")
	return m.readInt("Escolha uma opcao: ")
}

func (m *Menu) addItem() error {
	fmt.Fprintln(m.out, "--- Adicionar Novo Item ---")
	kind := 0
	for kind != 1 && kind != 2 {
		v, ok := m.readInt("Tipo (1 - Produto, 2 - Materia-Prima): ")
		if !ok {
			return nil
		}
		kind = v
	}

	name, ok := m.readNonEmpty("Nome: ")
	if !ok {
		return nil
	}
	description, ok := m.readNonEmpty("Descricao: ")
	if !ok {
		return nil
	}
	quantity, ok := m.readInt("Quantidade inicial: ")
	if !ok {
		return nil
	}
	link, ok := m.readLine("Link para info (ex: http://...): ")
	if !ok {
		return nil
	}
	if link == "" {
		link = fmt.Sprintf("http://google.com/search?q=%q", name)
	}

	var item entity.Item
	if kind == 1 {
		category, ok := m.readNonEmpty("Categoria do Produto: ")
		if !ok {
			return nil
		}
		item = m.uc.CreateProduct(name, description, quantity, link, category)
	} else {
		supplier, ok := m.readNonEmpty("Fornecedor da Materia-Prima: ")
		if !ok {
			return nil
		}
		item = m.uc.CreateRawMaterial(name, description, quantity, link, supplier)
	}
	fmt.Fprintf(m.out, "Item '%s' adicionado com sucesso (ID %d).\n", name, item.ID())
	return nil
}

func (m *Menu) removeItem() error {
	fmt.Fprintln(m.out, "--- Remover Item ---")
	id, ok := m.readInt("Digite o ID do item a ser removido: ")
	if !ok {
		return nil
	}
	if err := m.uc.RemoveByID(id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Item removido com sucesso.")
	return nil
}

func (m *Menu) editItem() error {
	fmt.Fprintln(m.out, "--- Modificar Item ---")
	id, ok := m.readInt("Digite o ID do item a ser modificado: ")
	if !ok {
		return nil
	}
	item, err := m.uc.FindByID(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Editando item: %s\n", item.Name())
	fmt.Fprintln(m.out, "(Deixe em branco para manter o valor atual)")
	name, ok := m.readLine(fmt.Sprintf("Novo nome [%s]: ", item.Name()))
	if !ok {
		return nil
	}
	description, ok := m.readLine(fmt.Sprintf("Nova descricao [%s]: ", item.Description()))
	if !ok {
		return nil
	}
	link, ok := m.readLine(fmt.Sprintf("Novo link [%s]: ", item.Link()))
	if !ok {
		return nil
	}

	if err := m.uc.EditFields(id, name, description, link); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Item atualizado com sucesso.")
	return nil
}

func (m *Menu) locateItem() error {
	fmt.Fprintln(m.out, "--- Localizar Item (Mostrar) ---")
	mode := 0
	for mode != 1 && mode != 2 {
		v, ok := m.readInt("Buscar por (1 - ID, 2 - Nome): ")
		if !ok {
			return nil
		}
		mode = v
	}

	var (
		item entity.Item
		err  error
	)
	if mode == 1 {
		id, ok := m.readInt("Digite o ID: ")
		if !ok {
			return nil
		}
		item, err = m.uc.FindByID(id)
	} else {
		name, ok := m.readNonEmpty("Digite o Nome: ")
		if !ok {
			return nil
		}
		item, err = m.uc.FindByName(name)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Item encontrado:")
	fmt.Fprintln(m.out, item.Summary())
	return nil
}

func (m *Menu) listItems() {
	if m.uc.ItemCount() == 0 {
		fmt.Fprintln(m.out, "Nenhum item no estoque.")
		return
	}
	for item := range m.uc.Items() {
		fmt.Fprintln(m.out, item.Summary())
	}
}

func (m *Menu) registerInbound() error {
	fmt.Fprintln(m.out, "--- Registrar Entrada ---")
	id, ok := m.readInt("Digite o ID do item: ")
	if !ok {
		return nil
	}
	quantity, ok := m.readInt("Digite a quantidade de ENTRADA: ")
	if !ok {
		return nil
	}
	if _, err := m.uc.RegisterInbound(id, quantity); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Entrada registrada com sucesso.")
	return nil
}

func (m *Menu) registerOutbound() error {
	fmt.Fprintln(m.out, "--- Registrar Saida ---")
	id, ok := m.readInt("Digite o ID do item: ")
	if !ok {
		return nil
	}
	quantity, ok := m.readInt("Digite a quantidade de SAIDA: ")
	if !ok {
		return nil
	}
	if _, err := m.uc.RegisterOutbound(id, quantity); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Saida registrada com sucesso.")
	return nil
}

func (m *Menu) showHistory() {
	if m.uc.MovementCount() == 0 {
		fmt.Fprintln(m.out, "Nenhuma movimentacao no historico.")
		return
	}
	for mov := range m.uc.History() {
		fmt.Fprintln(m.out, mov.Summary())
	}
}

func (m *Menu) openInBrowser() error {
	fmt.Fprintln(m.out, "--- Buscar Item na Internet ---")
	id, ok := m.readInt("Digite o ID do item para buscar: ")
	if !ok {
		return nil
	}
	link, err := m.uc.ItemLink(id)
	if err != nil {
		return err
	}
	if link == "" {
		return fmt.Errorf("o item %d nao possui link de informacao", id)
	}

	fmt.Fprintf(m.out, "Abrindo navegador com o link: %s\n", link)
	if err := m.openURL(link); err != nil {
		return fmt.Errorf("nao foi possivel abrir o navegador: %w", err)
	}
	return nil
}

// readLine muestra el prompt y lee una línea. ok=false significa EOF.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readNonEmpty reintenta hasta recibir una línea no vacía.
func (m *Menu) readNonEmpty(prompt string) (string, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
		fmt.Fprintln(m.out, "Este campo nao pode ficar vazio.")
	}
}

// readInt reintenta hasta recibir un entero válido.
func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Entrada invalida. Por favor, digite um numero.")
			continue
		}
		return v, true
	}
}

// pause espera ENTER antes de volver al menú. false significa EOF.
func (m *Menu) pause() bool {
	fmt.Fprintln(m.out, "\nPressione ENTER para continuar...")
	return m.in.Scan()
}

// clear limpia la pantalla con escapes ANSI (no hay system()).
func (m *Menu) clear() {
	fmt.Fprint(m.out, "\x1b[2J\x1b[H")
}
