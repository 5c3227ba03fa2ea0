package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

// execute runs one invocation. cobra skips post-run hooks when a command
// fails, so drivers are released here instead.
func execute(ctx context.Context, app *cliApp, args []string) error {
	defer app.release(ctx)

	rootCmd := newRootCmd(app)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(app *cliApp) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vollmedctl",
		Short:         "CLI client for the Vollmed appointment API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.saveSession()
		},
	}
	rootCmd.SetOut(app.out)

	rootCmd.PersistentFlags().StringVarP(&app.apiFlag, "api", "a", "", "Vollmed API base URL (defaults to API_BASE_URL or "+constvars.DefaultAPIBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&app.tokenFlag, "token", "", "Bearer token to use instead of the saved one")
	rootCmd.PersistentFlags().BoolVar(&app.saveTokenFlag, "save-token", false, "Load the token from and save it to the token file")
	rootCmd.PersistentFlags().StringVar(&app.tokenFileFlag, "token-file", "", "Token file location (defaults to the user config dir)")
	rootCmd.PersistentFlags().DurationVar(&app.timeoutFlag, "timeout", 0, "Per-request timeout, e.g. 5s")

	rootCmd.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newSpecialistsCmd(app),
		newAppointmentsCmd(app),
		newScheduleCmd(app),
		newRescheduleCmd(app),
		newCancelCmd(app),
		newImageCmd(app),
	)
	return rootCmd
}

func newLoginCmd(app *cliApp) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate a patient and keep the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.service.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return app.printJSON(response)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Patient email (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Patient password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(app.out, constvars.LogoutSuccessMessage)
			return nil
		},
	}
}

func newRegisterCmd(app *cliApp) *cobra.Command {
	patient := new(models.Patient)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.RegisterPatient(cmd.Context(), patient); err != nil {
				return err
			}
			fmt.Fprintln(app.out, constvars.RegisterPatientSuccessMessage)
			return nil
		},
	}
	cmd.Flags().StringVar(&patient.CPF, "cpf", "", "CPF, 11 digits (required)")
	cmd.Flags().StringVar(&patient.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&patient.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&patient.Password, "password", "", "Password, at least 6 characters (required)")
	cmd.Flags().StringVar(&patient.PhoneNumber, "phone", "", "Phone number (required)")
	cmd.Flags().StringVar(&patient.HealthPlan, "health-plan", "", "Health plan")
	return cmd
}

func newSpecialistsCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "specialists",
		Short: "List specialists",
		RunE: func(cmd *cobra.Command, args []string) error {
			specialists, err := app.service.ListSpecialists(cmd.Context())
			if err != nil {
				return err
			}
			return app.printJSON(specialists)
		},
	}
}

func newAppointmentsCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "appointments PATIENT_ID",
		Short: "List a patient's appointments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointments, err := app.service.ListAppointments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printJSON(appointments)
		},
	}
}

func newScheduleCmd(app *cliApp) *cobra.Command {
	var specialistID, patientID, date string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.service.ScheduleAppointment(cmd.Context(), specialistID, patientID, date)
			if err != nil {
				return err
			}
			return app.printJSON(response)
		},
	}
	cmd.Flags().StringVarP(&specialistID, "specialist", "s", "", "Specialist ID (required)")
	cmd.Flags().StringVarP(&patientID, "patient", "p", "", "Patient ID (required)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date in "+time.RFC3339+" format (required)")
	_ = cmd.MarkFlagRequired("specialist")
	_ = cmd.MarkFlagRequired("patient")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newRescheduleCmd(app *cliApp) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "reschedule APPOINTMENT_ID",
		Short: "Move an appointment to a new date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.service.RescheduleAppointment(cmd.Context(), args[0], date)
			if err != nil {
				return err
			}
			return app.printJSON(response)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "New date in "+time.RFC3339+" format (required)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newCancelCmd(app *cliApp) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "cancel APPOINTMENT_ID",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.CancelAppointment(cmd.Context(), args[0], reason); err != nil {
				return err
			}
			fmt.Fprintln(app.out, constvars.CancelAppointmentSuccessMessage)
			return nil
		},
	}
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Cancellation reason")
	return cmd
}

func newImageCmd(app *cliApp) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "image URL",
		Short: "Fetch a specialist image, falling back to the placeholder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setupImages(cmd.Context()); err != nil {
				return err
			}

			img, err := app.fetcher.FetchImageResult(cmd.Context(), args[0])
			placeholder := err != nil
			if placeholder {
				fmt.Fprintf(app.out, "using placeholder: %v\n", err)
				img = app.fetcher.Placeholder
			}
			bounds := img.Bounds()
			fmt.Fprintf(app.out, "%dx%d placeholder=%t\n", bounds.Dx(), bounds.Dy(), placeholder)

			if output == "" {
				return nil
			}
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			defer file.Close()
			return png.Encode(file, img)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the image as PNG to this file")
	return cmd
}
