package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/views"
	"github.com/shashiranjanraj/quickstationery/pkg/session"
	"github.com/shashiranjanraj/quickstationery/pkg/validate"
)

type AuthController struct {
	chrome
}

func NewAuthController(auth *services.AuthService, cart *services.CartService) *AuthController {
	return &AuthController{chrome{auth: auth, cart: cart}}
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type authPage struct {
	views.Base
	Name  string
	Email string
	Error string
}

// ShowLogin renders the login form, including any message flashed by a
// checkout that needed authentication.
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	message, _ := sess.GetFlashString(flashAuthMessage)
	_ = sess.Save(w)

	render(r, w, "login.html", authPage{
		Base:  c.base(r, "Log in", "login"),
		Error: message,
	})
}

// Login authenticates and redirects to the shop; failures re-render the
// form with an inline message and the typed email preserved.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	input := loginInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if errs := validate.Struct(input); validate.HasErrors(errs) {
		c.loginError(w, r, input.Email, firstError(errs, "email", "password"))
		return
	}

	if _, err := c.auth.Login(input.Email, input.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.loginError(w, r, input.Email, "Incorrect email or password.")
			return
		}
		c.loginError(w, r, input.Email, "Could not log in. Please try again.")
		return
	}

	http.Redirect(w, r, "/shop", http.StatusSeeOther)
}

func (c *AuthController) loginError(w http.ResponseWriter, r *http.Request, email, message string) {
	renderStatus(r, w, http.StatusUnprocessableEntity, "login.html", authPage{
		Base:  c.base(r, "Log in", "login"),
		Email: email,
		Error: message,
	})
}

// ShowSignup renders the registration form.
func (c *AuthController) ShowSignup(w http.ResponseWriter, r *http.Request) {
	render(r, w, "signup.html", authPage{
		Base: c.base(r, "Sign up", "signup"),
	})
}

// Signup creates the account, signs the user in, and redirects to the shop.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	input := signupInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if errs := validate.Struct(input); validate.HasErrors(errs) {
		c.signupError(w, r, input, firstError(errs, "name", "email", "password"))
		return
	}

	if _, err := c.auth.Signup(input.Name, input.Email, input.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			c.signupError(w, r, input, "An account with this email already exists.")
			return
		}
		c.signupError(w, r, input, "Could not create the account. Please try again.")
		return
	}

	http.Redirect(w, r, "/shop", http.StatusSeeOther)
}

func (c *AuthController) signupError(w http.ResponseWriter, r *http.Request, input signupInput, message string) {
	renderStatus(r, w, http.StatusUnprocessableEntity, "signup.html", authPage{
		Base:  c.base(r, "Sign up", "signup"),
		Name:  input.Name,
		Email: input.Email,
		Error: message,
	})
}

// Logout clears the session and returns to the landing page.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	_ = c.auth.Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
