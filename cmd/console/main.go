package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/blslogistica/cargoflow/internal/client"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newSession logs in with the credentials from the environment (or .env) and
// returns an authenticated API client.
func newSession(ctx context.Context) (*client.Client, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	baseURL := os.Getenv("CARGOFLOW_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	email := os.Getenv("CARGOFLOW_EMAIL")
	password := os.Getenv("CARGOFLOW_PASSWORD")
	if email == "" || password == "" {
		return nil, fmt.Errorf("CARGOFLOW_EMAIL and CARGOFLOW_PASSWORD must be set")
	}

	api := client.New(baseURL)
	if err := api.Login(ctx, email, password); err != nil {
		return nil, fmt.Errorf("logging in to %s: %w", baseURL, err)
	}
	return api, nil
}

// newStore creates a session and loads every collection before returning.
func newStore(ctx context.Context) (*client.Client, *client.Store, error) {
	api, err := newSession(ctx)
	if err != nil {
		return nil, nil, err
	}

	store := client.NewStore(api)
	if err := store.LoadAll(ctx); err != nil {
		return nil, nil, fmt.Errorf("loading data: %w", err)
	}
	return api, store, nil
}

var rootCmd = &cobra.Command{
	Use:   "cargoflow",
	Short: "Fleet administration console",
}

// dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show fleet indicators and alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		api, store, err := newStore(ctx)
		if err != nil {
			return err
		}

		printDashboard(store)
		if !watch {
			return nil
		}

		w := &client.Watch{
			Client: api,
			Store:  store,
			OnChange: func(col client.Collection) {
				fmt.Printf("\n[%s cambió]\n", col)
				printDashboard(store)
			},
		}
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func printDashboard(store *client.Store) {
	d := client.DeriveDashboard(store.Viajes(), store.Choferes(), store.Camiones(), store.Polizas(), time.Now())

	fmt.Printf("Viajes activos:       %d\n", d.ViajesActivos)
	fmt.Printf("Choferes disponibles: %d\n", d.ChoferesDisponibles)
	fmt.Printf("Alertas críticas:     %d\n", d.AlertasCriticas)

	if len(d.Alertas) == 0 {
		fmt.Println("\nSin alertas.")
		return
	}
	fmt.Println()
	for _, a := range d.Alertas {
		fmt.Printf("[%s] %s\n", a.Severity, a.Message)
	}
}

// list command
var listCmd = &cobra.Command{
	Use:   "list COLLECTION",
	Short: "List a collection (choferes, camiones, acoplados, viajes, polizas, gastos, tiposDeGasto)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, ok := client.ParseCollection(args[0])
		if !ok {
			return fmt.Errorf("unknown collection %q", args[0])
		}

		ctx := context.Background()
		_, store, err := newStore(ctx)
		if err != nil {
			return err
		}

		switch col {
		case client.Choferes:
			for _, c := range store.Choferes() {
				fmt.Printf("#%d  %s %s  %s  %s\n", c.ID, c.Nombre, c.Apellido, c.Identificacion, c.Telefono)
			}
		case client.Camiones:
			for _, c := range store.Camiones() {
				fmt.Printf("%-10s %s %s (%d)  %s\n", c.Dominio, c.Marca, c.Modelo, c.Anio, c.Estado)
			}
		case client.Acoplados:
			for _, a := range store.Acoplados() {
				fmt.Printf("%-10s %s %s (%d)  %s\n", a.Dominio, a.Marca, a.Modelo, a.Anio, a.Estado)
			}
		case client.Viajes:
			for _, v := range store.Viajes() {
				fin := "-"
				if !v.FechaFin.IsZero() {
					fin = v.FechaFin.Format("2006-01-02 15:04")
				}
				fmt.Printf("#%d  %s → %s  %s .. %s  chofer:%d camión:%s  %s\n",
					v.ID, v.Origen, v.Destino,
					v.FechaInicio.Format("2006-01-02 15:04"), fin,
					v.ChoferID, v.CamionDominio, v.Estado)
			}
		case client.Polizas:
			now := time.Now()
			for _, p := range store.Polizas() {
				fmt.Printf("#%d  %s  %s  vence %s  %s\n",
					p.ID, p.Aseguradora, p.VehiculoDominio,
					p.FinVigencia.Format("2006-01-02"),
					client.PolicyStatus(p.FinVigencia, now))
			}
		case client.Gastos:
			for _, g := range store.Gastos() {
				fecha := "-"
				if !g.Fecha.IsZero() {
					fecha = g.Fecha.Format("2006-01-02")
				}
				fmt.Printf("#%d  %s  %.2f %s  viaje:%d  %s\n", g.ID, fecha, g.Monto, g.Moneda, g.ViajeID, g.Descripcion)
			}
		case client.TiposDeGasto:
			for _, t := range store.TiposDeGasto() {
				fmt.Printf("#%d  %s\n", t.ID, t.Nombre)
			}
		case client.Currencies:
			for _, c := range store.Currencies() {
				fmt.Printf("%s  %s\n", c.Code, c.Name)
			}
		case client.VehiculoEstados:
			for _, e := range store.VehiculoEstados() {
				fmt.Printf("#%d  %s\n", e.ID, e.Nombre)
			}
		case client.ViajeEstados:
			for _, e := range store.ViajeEstados() {
				fmt.Printf("#%d  %s\n", e.ID, e.Nombre)
			}
		}
		return nil
	},
}

// tipos command
var tiposCmd = &cobra.Command{
	Use:   "tipos",
	Short: "Manage expense types",
}

var tiposAddCmd = &cobra.Command{
	Use:   "add NOMBRE",
	Short: "Add an expense type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		api, store, err := newStore(ctx)
		if err != nil {
			return err
		}

		coord := client.NewCoordinator(api, store)
		if err := coord.CreateTipoDeGasto(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Tipo de gasto %q creado\n", args[0])
		return nil
	},
}

var tiposRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete an expense type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		ctx := context.Background()
		api, store, err := newStore(ctx)
		if err != nil {
			return err
		}

		coord := client.NewCoordinator(api, store)
		pending, err := coord.RemoveTipoDeGasto(uint(id))
		if err != nil {
			return err
		}

		if !yes {
			fmt.Printf("¿Eliminar %s? [y/N] ", pending.Description)
			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Cancelado.")
				return nil
			}
		}

		if err := pending.Confirm(ctx); err != nil {
			return err
		}
		fmt.Printf("Eliminado %s\n", pending.Description)
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download spreadsheet reports",
}

func saveReport(ctx context.Context, endpoint, out string) error {
	api, err := newSession(ctx)
	if err != nil {
		return err
	}

	data, err := api.GetRaw(ctx, endpoint)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
	return nil
}

var exportViajesCmd = &cobra.Command{
	Use:   "viajes",
	Short: "Export every trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		return saveReport(context.Background(), "informes/viajes-excel", out)
	},
}

var exportGastosViajeCmd = &cobra.Command{
	Use:   "gastos-viaje ID",
	Short: "Export the expenses of one trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		return saveReport(context.Background(), "informes/gastos-viaje-excel/"+args[0], out)
	},
}

var exportGastosPeriodoCmd = &cobra.Command{
	Use:   "gastos-periodo",
	Short: "Export the expenses of a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		desde, _ := cmd.Flags().GetString("desde")
		hasta, _ := cmd.Flags().GetString("hasta")
		if desde == "" || hasta == "" {
			return fmt.Errorf("--desde and --hasta are required (YYYY-MM-DD)")
		}
		endpoint := fmt.Sprintf("informes/gastos-periodo-excel?fecha_inicio=%s&fecha_fin=%s", desde, hasta)
		return saveReport(context.Background(), endpoint, out)
	},
}

// reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rebuild the database with seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		api, err := newSession(ctx)
		if err != nil {
			return err
		}

		if err := api.Post(ctx, "reset", nil, nil); err != nil {
			return err
		}
		fmt.Println("Reset started.")

		// Poll until the server reports the run finished.
		for {
			time.Sleep(time.Second)
			var status struct {
				InProgress bool    `json:"in_progress"`
				LastError  *string `json:"last_error"`
			}
			if err := api.Get(ctx, "reset/status", &status); err != nil {
				return err
			}
			if status.InProgress {
				continue
			}
			if status.LastError != nil {
				return fmt.Errorf("reset failed: %s", *status.LastError)
			}
			fmt.Println("Reset finished.")
			return nil
		}
	},
}

func init() {
	dashboardCmd.Flags().BoolP("watch", "w", false, "Keep running and refresh on server changes")

	tiposCmd.AddCommand(tiposAddCmd)
	tiposCmd.AddCommand(tiposRmCmd)
	tiposRmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	exportCmd.AddCommand(exportViajesCmd)
	exportCmd.AddCommand(exportGastosViajeCmd)
	exportCmd.AddCommand(exportGastosPeriodoCmd)
	exportViajesCmd.Flags().StringP("out", "o", "viajes.xlsx", "Output file")
	exportGastosViajeCmd.Flags().StringP("out", "o", "gastos-viaje.xlsx", "Output file")
	exportGastosPeriodoCmd.Flags().StringP("out", "o", "gastos-periodo.xlsx", "Output file")
	exportGastosPeriodoCmd.Flags().String("desde", "", "Start date (YYYY-MM-DD)")
	exportGastosPeriodoCmd.Flags().String("hasta", "", "End date (YYYY-MM-DD)")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tiposCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}
