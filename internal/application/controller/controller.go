package controller

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/domain"
	"github.com/jhoicas/pasteleria-pos/internal/infrastructure/ticket"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/ui"
	"github.com/jhoicas/pasteleria-pos/internal/session"
	"github.com/jhoicas/pasteleria-pos/internal/transport"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

// Controller coordina backend, sesión y vistas. Cada operación de vista
// recarga sus datos y redibuja completo, nunca parchea lo ya mostrado.
type Controller struct {
	api     *apiclient.Client
	sess    *session.Store
	printer *ticket.Printer
	state   *AppState
	out     io.Writer
	log     *logger.Logger
	now     func() time.Time
}

// New construye el controlador con estado inicial.
func New(api *apiclient.Client, sess *session.Store, printer *ticket.Printer, out io.Writer, log *logger.Logger) *Controller {
	return &Controller{
		api:     api,
		sess:    sess,
		printer: printer,
		state:   NewAppState(),
		out:     out,
		log:     log,
		now:     time.Now,
	}
}

// State expone el estado para los lazos de comandos y las pruebas.
func (c *Controller) State() *AppState { return c.state }

// RestoreSession intenta reanudar la sesión persistida. El token
// guardado se asume válido: la UI entra directo al dashboard y la
// primera llamada real al backend detecta un token vencido.
func (c *Controller) RestoreSession(ctx context.Context) bool {
	if !c.sess.Restore() {
		return false
	}
	c.state.Usuario = c.sess.User()
	c.state.Vista = ViewDashboard
	c.log.Info().Str("usuario", c.state.Usuario.Email).Msg("sesión restaurada")
	return true
}

// Login autentica, persiste la sesión y navega al dashboard.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	user, err := c.sess.Login(ctx, c.api, email, password)
	if err != nil {
		c.toastError(err)
		return err
	}
	c.state.Usuario = user
	c.state.Vista = ViewDashboard
	ui.Toast(c.out, "success", "Bienvenido, "+user.Nombre)
	return nil
}

// Logout borra la sesión durable y resetea todo el estado de la UI.
func (c *Controller) Logout() {
	c.sess.Logout()
	c.state.Reset()
	c.log.Info().Msg("sesión cerrada")
}

// Navigate cambia de vista y ejecuta su carga inicial.
func (c *Controller) Navigate(ctx context.Context, vista string) error {
	if c.state.Usuario == nil {
		return domain.ErrSinSesion
	}
	c.state.Vista = vista
	switch vista {
	case ViewPOS:
		return c.loadPOS(ctx)
	case ViewInventory:
		return c.loadInventory(ctx)
	case ViewProducts:
		return c.loadCatalogo(ctx)
	case ViewSales:
		return c.loadVentas(ctx)
	case ViewReports:
		return c.loadReports(ctx)
	case ViewProjections:
		return c.loadProyeccionAuto(ctx)
	case ViewDashboard:
		return nil
	}
	return nil
}

// toastError traduce el error a un aviso para el usuario. Los errores
// del backend llevan su propio mensaje; los de red usan el mensaje fijo
// de conexión.
func (c *Controller) toastError(err error) {
	var be *transport.BackendError
	switch {
	case errors.As(err, &be):
		ui.Toast(c.out, "error", be.Message)
	case errors.Is(err, domain.ErrConexion):
		ui.Toast(c.out, "error", domain.ErrConexion.Error())
	default:
		ui.Toast(c.out, "error", err.Error())
	}
}
