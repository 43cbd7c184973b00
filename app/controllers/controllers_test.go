package controllers_test

// End-to-end page flows over an in-memory store: every test drives the real
// handler stack (router, middleware, sessions, templates) through a
// cookie-keeping browser.

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/quickstationery/app/store"
	"github.com/shashiranjanraj/quickstationery/pkg/app"
	"github.com/shashiranjanraj/quickstationery/pkg/testkit"
)

func newBrowser(t *testing.T) (*testkit.Browser, *app.Application) {
	t.Helper()
	a := app.NewWithStore(store.New(store.NewMemoryDriver()))
	return testkit.NewBrowser(t, a.Handler()), a
}

func signup(t *testing.T, b *testkit.Browser, name, email, password string) {
	t.Helper()
	b.PostForm("/signup", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	}).AssertStatus(200)
}

func TestHomePage(t *testing.T) {
	b, _ := newBrowser(t)

	b.Get("/").
		AssertStatus(200).
		AssertContains("QuickStationery").
		AssertContains(`id="cartCount"`).
		AssertContains(">0</span>").
		AssertContains("notebooks")
}

func TestShopListsWholeCatalog(t *testing.T) {
	b, _ := newBrowser(t)

	b.Get("/shop").
		AssertStatus(200).
		AssertContains("A5 Ruled Notebook (200 pages)").
		AssertContains("Binder Clips (Assorted, 24 pcs)")
}

func TestAddToCartUpdatesBadgeAndControls(t *testing.T) {
	b, _ := newBrowser(t)

	// Follows the redirect back to the shop; the card now shows +/- instead
	// of Add, and the header badge reads 1.
	page := b.PostForm("/cart/add", url.Values{
		"id":   {"pen-gel-smooth"},
		"back": {"shop"},
	})
	page.AssertStatus(200).
		AssertContains(">1</span>").
		AssertContains(`name="delta" value="1"`)
}

func TestUnknownProductIsIgnored(t *testing.T) {
	b, a := newBrowser(t)

	b.PostForm("/cart/add", url.Values{"id": {"no-such-product"}}).
		AssertStatus(200)

	count, err := a.Cart.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSearchHandoffFromHome(t *testing.T) {
	b, _ := newBrowser(t)

	// The home search flashes the query and lands on a pre-filtered shop.
	b.PostForm("/search", url.Values{"q": {"bullet"}}).
		AssertStatus(200).
		AssertContains("A5 Dotted Journal").
		AssertNotContains("Smooth Gel Pen")

	// The flash is consumed: a plain reload shows the whole catalog again.
	b.Get("/shop").
		AssertContains("Smooth Gel Pen")
}

func TestCategoryChipHandoffFromHome(t *testing.T) {
	b, _ := newBrowser(t)

	b.Get("/category/pens").
		AssertStatus(200).
		AssertContains("Blue Ball Pen (Pack of 10)").
		AssertNotContains("A4 Sketchbook")
}

func TestEmptySearchStaysHome(t *testing.T) {
	b, _ := newBrowser(t)

	b.PostFormNoRedirect("/search", url.Values{"q": {"   "}}).
		AssertRedirect("/")
}

func TestRemoveButtonClearsLine(t *testing.T) {
	b, _ := newBrowser(t)

	b.PostForm("/cart/add", url.Values{"id": {"sketchbook-a4"}})
	b.PostForm("/cart/add", url.Values{"id": {"sketchbook-a4"}})

	b.Get("/cart").
		AssertContains("A4 Sketchbook").
		AssertContains("₹249 × 2")

	// delta=-999 is the ✕ button: the whole line goes regardless of qty.
	b.PostForm("/cart/change", url.Values{
		"id":    {"sketchbook-a4"},
		"delta": {"-999"},
	}).AssertContains("Your cart is empty")
}

func TestDecrementToZeroRemovesLine(t *testing.T) {
	b, _ := newBrowser(t)

	b.PostForm("/cart/add", url.Values{"id": {"sticky-notes-neon"}})
	b.PostForm("/cart/change", url.Values{
		"id":    {"sticky-notes-neon"},
		"delta": {"-1"},
	}).AssertContains("Your cart is empty")
}

func TestCheckoutEmptyCart(t *testing.T) {
	b, _ := newBrowser(t)

	b.PostForm("/checkout", url.Values{}).
		AssertStatus(200).
		AssertContains("Cart is empty. Add some items first.")
}

func TestCheckoutRequiresLogin(t *testing.T) {
	b, a := newBrowser(t)

	b.PostForm("/cart/add", url.Values{"id": {"notebook-ruled-a5"}})

	// Anonymous checkout lands on the login page with the flashed notice;
	// the cart is left untouched.
	b.PostForm("/checkout", url.Values{}).
		AssertStatus(200).
		AssertContains("Log in").
		AssertContains("Please log in or sign up before placing an order.")

	count, err := a.Cart.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSignupValidation(t *testing.T) {
	b, _ := newBrowser(t)

	b.PostForm("/signup", url.Values{
		"name":     {"A"},
		"email":    {"a@shop.test"},
		"password": {"secret"},
	}).AssertStatus(422)
}

func TestDuplicateSignup(t *testing.T) {
	b, _ := newBrowser(t)

	signup(t, b, "Asha", "asha@shop.test", "secret")
	b.PostForm("/logout", url.Values{})

	b.PostForm("/signup", url.Values{
		"name":     {"Asha Again"},
		"email":    {"ASHA@shop.test"}, // same address, different case
		"password": {"other"},
	}).AssertStatus(422).
		AssertContains("An account with this email already exists.")
}

func TestLoginWrongPassword(t *testing.T) {
	b, _ := newBrowser(t)

	signup(t, b, "Asha", "asha@shop.test", "secret")
	b.PostForm("/logout", url.Values{})

	b.PostForm("/login", url.Values{
		"email":    {"asha@shop.test"},
		"password": {"wrong"},
	}).AssertStatus(422).
		AssertContains("Incorrect email or password.")
}

func TestAuthTogglesHeader(t *testing.T) {
	b, _ := newBrowser(t)

	b.Get("/").AssertContains(">Login</a>")

	signup(t, b, "Asha", "asha@shop.test", "secret")
	b.Get("/").
		AssertContains(">Logout</button>").
		AssertContains(`href="/profile"`)

	b.PostForm("/logout", url.Values{}).
		AssertContains(">Login</a>")
}

func TestProfileAnonymous(t *testing.T) {
	b, _ := newBrowser(t)

	b.Get("/profile").
		AssertStatus(200).
		AssertContains("You are not logged in. Please log in to view your profile.")
}

func TestFullPurchaseFlow(t *testing.T) {
	b, a := newBrowser(t)

	signup(t, b, "Asha", "asha@shop.test", "secret")

	b.PostForm("/cart/add", url.Values{"id": {"pen-gel-smooth"}})
	b.PostForm("/cart/add", url.Values{"id": {"pen-gel-smooth"}})
	b.PostForm("/cart/add", url.Values{"id": {"notebook-ruled-a5"}})

	// 2×59 + 89
	b.PostForm("/checkout", url.Values{}).
		AssertStatus(200).
		AssertContains("Order placed!").
		AssertContains(`id="orderId">QS`).
		AssertContains(`id="orderTotal">207<`)

	// The cart is consumed by the order.
	count, err := a.Cart.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	b.Get("/profile").
		AssertContains("Hi, Asha. This is your QuickStationery profile.").
		AssertContains("₹207")
}

func TestApiProducts(t *testing.T) {
	b, _ := newBrowser(t)

	resp := b.Get("/api/products?category=pens")
	resp.AssertStatus(200)

	var body struct {
		Status int `json:"status"`
		Data   []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, 200, body.Status)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "pen-gel-smooth", body.Data[0].ID)
}

func TestApiCartCount(t *testing.T) {
	b, _ := newBrowser(t)

	b.PostForm("/cart/add", url.Values{"id": {"binder-clips"}})

	resp := b.Get("/api/cart/count")
	resp.AssertStatus(200)

	var body struct {
		Data map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, 1, body.Data["count"])
}
