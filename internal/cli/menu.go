// Package cli implements the interactive text menu on top of the inventory
// and credential stores.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erazemk/prodajalna/internal/model"
)

// Inventory is the part of store.Inventory the menu drives.
type Inventory interface {
	AddProduct(p model.Product)
	RecordSale(productID uuid.UUID, quantity int) (model.Transaction, error)
	RecordPurchase(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (model.Transaction, error)
	InventoryReport() string
	SalesReport() string
	PurchaseReport() string
	Save(path string) error
}

// Credentials is the part of auth.Credentials the menu drives.
type Credentials interface {
	Login(username, password string) error
	Logout()
	IsManager() bool
	CurrentUser() (model.User, bool)
	Register(username, password string, role model.Role) error
}

// Menu reads commands line by line and prints results. Errors from the
// stores are printed and the loop continues.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	inv       Inventory
	creds     Credentials
	storeFile string
}

// New returns a menu that saves inv to storeFile after each session and on exit.
func New(in io.Reader, out io.Writer, inv Inventory, creds Credentials, storeFile string) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		inv:       inv,
		creds:     creds,
		storeFile: storeFile,
	}
}

// Run shows the top-level menu until the user exits or input ends, then
// saves the inventory.
func (m *Menu) Run() error {
loop:
	for {
		m.printf("\nProdajalna\n1. Login\n2. Exit\n> ")

		choice, ok := m.readLine()
		if !ok {
			break
		}

		switch choice {
		case "1":
			if !m.login() {
				break loop
			}
		case "2":
			break loop
		default:
			m.printf("Invalid choice\n")
		}
	}

	if err := m.inv.Save(m.storeFile); err != nil {
		m.printf("Error saving store: %v\n", err)
		return err
	}
	return nil
}

// login returns false once input is exhausted.
func (m *Menu) login() bool {
	username, ok := m.prompt("Username: ")
	if !ok {
		return false
	}
	password, ok := m.prompt("Password: ")
	if !ok {
		return false
	}

	if err := m.creds.Login(username, password); err != nil {
		m.printf("Login failed! Invalid username or password\n")
		return true
	}
	m.printf("Login successful!\n")

	more := m.mainMenu()
	m.creds.Logout()

	if err := m.inv.Save(m.storeFile); err != nil {
		m.printf("Error saving store: %v\n", err)
	}
	return more
}

// mainMenu returns false once input is exhausted.
func (m *Menu) mainMenu() bool {
	for {
		if _, ok := m.creds.CurrentUser(); !ok {
			m.printf("Session expired, please log in again\n")
			return true
		}

		m.printf("\nMain Menu\n" +
			"1. View Inventory\n" +
			"2. Add Product\n" +
			"3. Record Sale\n" +
			"4. Record Purchase\n" +
			"5. View Reports\n" +
			"6. Logout\n" +
			"7. Register User\n" +
			"> ")

		choice, ok := m.readLine()
		if !ok {
			return false
		}

		switch choice {
		case "1":
			m.printf("\n%s", m.inv.InventoryReport())
		case "2":
			if m.requireManager() {
				m.addProduct()
			}
		case "3":
			m.recordSale()
		case "4":
			m.recordPurchase()
		case "5":
			m.reports()
		case "6":
			return true
		case "7":
			if m.requireManager() {
				m.registerUser()
			}
		default:
			m.printf("Invalid choice\n")
		}
	}
}

func (m *Menu) requireManager() bool {
	if m.creds.IsManager() {
		return true
	}
	m.printf("Permission denied: Manager access required\n")
	return false
}

func (m *Menu) addProduct() {
	name, ok := m.prompt("Enter product name: ")
	if !ok {
		return
	}
	if name == "" {
		m.printf("Product name must not be empty\n")
		return
	}
	description, ok := m.prompt("Enter description: ")
	if !ok {
		return
	}
	price, ok := m.promptPrice("Enter price: ")
	if !ok {
		return
	}
	quantity, ok := m.promptInt("Enter quantity: ", 0)
	if !ok {
		return
	}

	p := model.NewProduct(name, description, price, quantity)
	m.inv.AddProduct(p)
	m.printf("Product added successfully (ID: %s)\n", p.ID)
}

func (m *Menu) recordSale() {
	id, ok := m.promptProduct()
	if !ok {
		return
	}
	quantity, ok := m.promptInt("Enter quantity: ", 1)
	if !ok {
		return
	}

	if _, err := m.inv.RecordSale(id, quantity); err != nil {
		m.printf("Error recording sale: %v\n", err)
		return
	}
	m.printf("Sale recorded successfully\n")
}

func (m *Menu) recordPurchase() {
	id, ok := m.promptProduct()
	if !ok {
		return
	}
	quantity, ok := m.promptInt("Enter quantity: ", 1)
	if !ok {
		return
	}
	price, ok := m.promptPrice("Enter purchase price per unit: ")
	if !ok {
		return
	}

	if _, err := m.inv.RecordPurchase(id, quantity, price); err != nil {
		m.printf("Error recording purchase: %v\n", err)
		return
	}
	m.printf("Purchase recorded successfully\n")
}

func (m *Menu) reports() {
	m.printf("\nReports Menu\n1. Inventory Report\n2. Sales Report\n3. Purchase Report\n> ")

	choice, ok := m.readLine()
	if !ok {
		return
	}

	switch choice {
	case "1":
		m.printf("\n%s", m.inv.InventoryReport())
	case "2":
		m.printf("\n%s", m.inv.SalesReport())
	case "3":
		m.printf("\n%s", m.inv.PurchaseReport())
	default:
		m.printf("Invalid choice\n")
	}
}

func (m *Menu) registerUser() {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Enter password: ")
	if !ok {
		return
	}
	choice, ok := m.prompt("Role (1. Manager, 2. Employee): ")
	if !ok {
		return
	}

	var role model.Role
	switch choice {
	case "1":
		role = model.RoleManager
	case "2":
		role = model.RoleEmployee
	default:
		m.printf("Invalid role\n")
		return
	}

	if err := m.creds.Register(username, password, role); err != nil {
		m.printf("Error registering user: %v\n", err)
		return
	}
	m.printf("User %s registered\n", username)
}

func (m *Menu) promptProduct() (uuid.UUID, bool) {
	m.printf("\nAvailable Products:\n%s", m.inv.InventoryReport())

	raw, ok := m.prompt("Enter product ID: ")
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		m.printf("Invalid product ID\n")
		return uuid.Nil, false
	}
	return id, true
}

// promptInt rejects anything that is not an integer of at least minimum.
func (m *Menu) promptInt(label string, minimum int) (int, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < minimum {
		m.printf("Invalid quantity: %q\n", raw)
		return 0, false
	}
	return n, true
}

func (m *Menu) promptPrice(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		m.printf("Invalid price: %q\n", raw)
		return decimal.Zero, false
	}
	return price, true
}

func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	return m.readLine()
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			slog.Error("reading input", "error", err)
		}
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
