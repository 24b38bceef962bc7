package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/application/controller"
	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/internal/infrastructure/mockbackend"
	"github.com/jhoicas/pasteleria-pos/internal/infrastructure/ticket"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/ui"
	"github.com/jhoicas/pasteleria-pos/internal/session"
	"github.com/jhoicas/pasteleria-pos/internal/transport"
	"github.com/jhoicas/pasteleria-pos/pkg/config"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

// comando una entrada del registro del lazo interactivo.
type comando struct {
	uso   string
	ayuda string
	run   func(ctx context.Context, args []string) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("error cargando configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	sess, err := session.New(cfg.Session.FilePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo abrir el archivo de sesión")
	}

	tr, err := buildTransport(cfg, sess, log)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo construir el transporte")
	}
	api := apiclient.New(tr)
	printer := ticket.NewPrinter(cfg.Ticket.SpoolDir, cfg.Ticket.SettleDelay, log)

	out := os.Stdout
	ctrl := controller.New(api, sess, printer, out, log)
	forms := ui.NewForms(os.Stdin, out)

	ctx := context.Background()
	if ctrl.RestoreSession(ctx) {
		fmt.Fprintf(out, "Sesión activa: %s\n", ctrl.State().Usuario.Nombre)
	} else {
		fmt.Fprintln(out, "Inicia sesión con: login <email> <password>")
	}

	loop(ctx, ctrl, forms, out)
}

func buildTransport(cfg *config.Config, sess *session.Store, log *logger.Logger) (transport.Transport, error) {
	switch cfg.Transport.Mode {
	case "http":
		return transport.NewHTTPTransport(cfg.Transport.APIURL, sess, log), nil
	case "bridge":
		return transport.NewBridgeTransport(newBackend(cfg), sess), nil
	case "mock":
		return transport.NewMockTransport(newBackend(cfg).Handle, sess, cfg.Transport.MockDelay), nil
	}
	return nil, fmt.Errorf("modo de transporte desconocido: %s", cfg.Transport.Mode)
}

func newBackend(cfg *config.Config) *mockbackend.Backend {
	return mockbackend.New(mockbackend.Config{
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		JWTExpMins: cfg.JWT.Expiration,
	})
}

// loop lee comandos de stdin y los despacha contra el registro.
func loop(ctx context.Context, ctrl *controller.Controller, forms *ui.Forms, out *os.File) {
	registry := buildRegistry(ctrl, forms, out)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(out, "> ")
			continue
		}
		name, args := fields[0], fields[1:]
		if name == "salir" || name == "exit" {
			return
		}
		if name == "ayuda" || name == "help" {
			printHelp(out, registry)
			fmt.Fprint(out, "> ")
			continue
		}
		cmd, ok := registry[name]
		if !ok {
			fmt.Fprintf(out, "Comando desconocido: %s (ayuda para la lista)\n> ", name)
			continue
		}
		// El aviso al usuario ya salió por el toast del controlador.
		cmd.run(ctx, args)
		fmt.Fprint(out, "> ")
	}
}

func printHelp(out *os.File, registry map[string]comando) {
	nombres := make([]string, 0, len(registry))
	for n := range registry {
		nombres = append(nombres, n)
	}
	sort.Strings(nombres)
	for _, n := range nombres {
		fmt.Fprintf(out, "  %-36s %s\n", registry[n].uso, registry[n].ayuda)
	}
}

func buildRegistry(ctrl *controller.Controller, forms *ui.Forms, out *os.File) map[string]comando {
	st := ctrl.State()

	return map[string]comando{
		"login": {
			uso: "login <email> <password>", ayuda: "inicia sesión",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 2 {
					fmt.Fprintln(out, "Uso: login <email> <password>")
					return nil
				}
				return ctrl.Login(ctx, args[0], args[1])
			},
		},
		"logout": {
			uso: "logout", ayuda: "cierra la sesión",
			run: func(ctx context.Context, args []string) error {
				ctrl.Logout()
				fmt.Fprintln(out, "Sesión cerrada")
				return nil
			},
		},
		"ir": {
			uso: "ir <pos|products|inventory|sales|reports|projections>", ayuda: "navega a una vista",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					fmt.Fprintln(out, "Uso: ir <vista>")
					return nil
				}
				return ctrl.Navigate(ctx, args[0])
			},
		},
		"buscar": {
			uso: "buscar [texto]", ayuda: "filtra el catálogo del POS",
			run: func(ctx context.Context, args []string) error {
				ctrl.SetFiltro(strings.Join(args, " "))
				return nil
			},
		},
		"agregar": {
			uso: "agregar <idProducto>", ayuda: "agrega una unidad al carrito",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					return nil
				}
				return ctrl.AddToCart(args[0])
			},
		},
		"quitar": {
			uso: "quitar <idProducto>", ayuda: "quita la línea del carrito",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					return nil
				}
				ctrl.RemoveFromCart(args[0])
				return nil
			},
		},
		"descuento": {
			uso: "descuento <monto>", ayuda: "aplica un descuento plano",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					return nil
				}
				d, err := decimal.NewFromString(args[0])
				if err != nil {
					fmt.Fprintln(out, "Monto inválido")
					return nil
				}
				ctrl.SetDescuento(d)
				return nil
			},
		},
		"pago": {
			uso: "pago <Efectivo|Tarjeta|Transferencia>", ayuda: "fija el método de pago",
			run: func(ctx context.Context, args []string) error {
				if len(args) >= 1 {
					ctrl.SetMetodoPago(args[0])
				}
				return nil
			},
		},
		"cobrar": {
			uso: "cobrar", ayuda: "registra la venta e imprime el ticket",
			run: func(ctx context.Context, args []string) error {
				return ctrl.Checkout(ctx)
			},
		},
		"stock": {
			uso: "stock <idInsumo> [delta]", ayuda: "ajusta el stock de un insumo (delta con signo)",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					fmt.Fprintln(out, "Uso: stock <idInsumo> [delta]")
					return nil
				}
				if len(args) >= 2 {
					d, err := decimal.NewFromString(args[1])
					if err != nil {
						fmt.Fprintln(out, "Delta inválido")
						return nil
					}
					return ctrl.AdjustInsumoStock(ctx, args[0], d)
				}
				d, err := forms.PromptCantidad("Ajuste de Stock")
				if err != nil {
					ui.Toast(out, "warning", "La cantidad debe ser un número mayor que cero")
					return nil
				}
				if forms.Confirm("¿Restar del stock?") {
					d = d.Neg()
				}
				return ctrl.AdjustInsumoStock(ctx, args[0], d)
			},
		},
		"producir": {
			uso: "producir <idProducto>", ayuda: "registra una corrida de producción",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					return nil
				}
				nombre := args[0]
				for _, p := range st.Catalogo {
					if p.ID == args[0] {
						nombre = p.Nombre
					}
				}
				n, err := forms.PromptProduccion(nombre)
				if err != nil {
					ui.Toast(out, "warning", "La cantidad debe ser un entero positivo")
					return nil
				}
				return ctrl.RegisterProduction(ctx, args[0], n)
			},
		},
		"producto": {
			uso: "producto <nuevo|editar <id>|borrar <id>|stock <id> [delta]>", ayuda: "administra productos",
			run: func(ctx context.Context, args []string) error {
				return productoCmd(ctx, ctrl, forms, out, args)
			},
		},
		"insumo": {
			uso: "insumo <nuevo|editar <id>>", ayuda: "administra insumos",
			run: func(ctx context.Context, args []string) error {
				return insumoCmd(ctx, ctrl, forms, out, args)
			},
		},
		"periodo": {
			uso: "periodo <today|week|month>", ayuda: "preset del periodo (ventas o informes según la vista)",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					return nil
				}
				if st.Vista == controller.ViewReports {
					return ctrl.SetReportPeriodo(ctx, args[0])
				}
				return ctrl.SetPeriodo(ctx, args[0])
			},
		},
		"venta": {
			uso: "venta <idVenta>", ayuda: "muestra el detalle de una venta",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					return nil
				}
				return ctrl.ShowSaleDetail(ctx, args[0])
			},
		},
		"ticket": {
			uso: "ticket <idVenta>", ayuda: "reimprime el ticket de una venta",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 1 {
					return nil
				}
				return ctrl.ReprintTicket(ctx, args[0])
			},
		},
		"modo": {
			uso: "modo", ayuda: "alterna proyección histórica/manual",
			run: func(ctx context.Context, args []string) error {
				return ctrl.ToggleManual(ctx)
			},
		},
		"meta": {
			uso: "meta <índice> <cantidad>", ayuda: "fija una meta manual de proyección",
			run: func(ctx context.Context, args []string) error {
				if len(args) < 2 {
					fmt.Fprintln(out, "Uso: meta <índice> <cantidad>")
					return nil
				}
				idx, err := strconv.Atoi(args[0])
				if err != nil {
					return nil
				}
				qty, err := decimal.NewFromString(args[1])
				if err != nil {
					fmt.Fprintln(out, "Cantidad inválida")
					return nil
				}
				return ctrl.SetMeta(ctx, idx, qty)
			},
		},
	}
}

func productoCmd(ctx context.Context, ctrl *controller.Controller, forms *ui.Forms, out *os.File, args []string) error {
	st := ctrl.State()
	if len(args) < 1 {
		fmt.Fprintln(out, "Uso: producto <nuevo|editar <id>|borrar <id>>")
		return nil
	}
	switch args[0] {
	case "nuevo":
		data, receta, err := forms.ProductForm(nil, st.Insumos, nil)
		if err != nil {
			ui.Toast(out, "warning", "Nombre, categoría y precio son obligatorios")
			return nil
		}
		return ctrl.SaveProduct(ctx, "", data, receta)
	case "editar":
		if len(args) < 2 {
			return nil
		}
		var existente *entity.Producto
		for i := range st.Catalogo {
			if st.Catalogo[i].ID == args[1] {
				existente = &st.Catalogo[i]
			}
		}
		if existente == nil {
			ui.Toast(out, "error", "Producto no encontrado")
			return nil
		}
		bom, err := ctrl.BOMFor(ctx, existente.ID)
		if err != nil {
			return err
		}
		data, receta, err := forms.ProductForm(existente, st.Insumos, bom)
		if err != nil {
			ui.Toast(out, "warning", "Nombre, categoría y precio son obligatorios")
			return nil
		}
		return ctrl.SaveProduct(ctx, existente.ID, data, receta)
	case "borrar":
		if len(args) < 2 {
			return nil
		}
		if !forms.Confirm("¿Eliminar el producto " + args[1] + "?") {
			return nil
		}
		return ctrl.DeleteProduct(ctx, args[1])
	case "stock":
		if len(args) < 2 {
			fmt.Fprintln(out, "Uso: producto stock <id> [delta]")
			return nil
		}
		if len(args) >= 3 {
			d, err := decimal.NewFromString(args[2])
			if err != nil {
				fmt.Fprintln(out, "Delta inválido")
				return nil
			}
			return ctrl.AdjustProductStock(ctx, args[1], d)
		}
		d, err := forms.PromptCantidad("Ajuste de Stock")
		if err != nil {
			ui.Toast(out, "warning", "La cantidad debe ser un número mayor que cero")
			return nil
		}
		if forms.Confirm("¿Restar del stock?") {
			d = d.Neg()
		}
		return ctrl.AdjustProductStock(ctx, args[1], d)
	}
	return nil
}

func insumoCmd(ctx context.Context, ctrl *controller.Controller, forms *ui.Forms, out *os.File, args []string) error {
	st := ctrl.State()
	if len(args) < 1 {
		fmt.Fprintln(out, "Uso: insumo <nuevo|editar <id>>")
		return nil
	}
	switch args[0] {
	case "nuevo":
		data, err := forms.InsumoForm(nil)
		if err != nil {
			ui.Toast(out, "warning", "Todos los campos del insumo son obligatorios")
			return nil
		}
		return ctrl.SaveInsumo(ctx, "", data)
	case "editar":
		if len(args) < 2 {
			return nil
		}
		var existente *entity.Insumo
		for i := range st.Insumos {
			if st.Insumos[i].ID == args[1] {
				existente = &st.Insumos[i]
			}
		}
		if existente == nil {
			ui.Toast(out, "error", "Insumo no encontrado")
			return nil
		}
		data, err := forms.InsumoForm(existente)
		if err != nil {
			ui.Toast(out, "warning", "Todos los campos del insumo son obligatorios")
			return nil
		}
		return ctrl.SaveInsumo(ctx, existente.ID, data)
	}
	return nil
}
