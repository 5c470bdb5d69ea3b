package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jobtrack/internal/client"
	"jobtrack/internal/models"
)

func newController() *client.Controller {
	return client.NewController(client.New(serverAddr), cliNotifier{})
}

// loadController fetches the collection before any command runs against it.
func loadController(cmd *cobra.Command) (*client.Controller, error) {
	ctl := newController()
	if err := ctl.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return ctl, nil
}

func findJob(ctl *client.Controller, id string) (models.JobApplication, error) {
	for _, job := range ctl.Jobs() {
		if job.ID.String() == id || strings.HasPrefix(job.ID.String(), id) {
			return job, nil
		}
	}
	return models.JobApplication{}, fmt.Errorf("no application with ID %q", id)
}

// --- list ---

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := loadController(cmd)
		if err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		ctl.SetSearch(search)
		jobs := ctl.Filtered()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(jobs)
		}

		if len(jobs) == 0 {
			fmt.Println("No applications found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tLOCATION\tSTATUS\tDATE")
		for _, job := range jobs {
			badge := statusBadge(string(job.Status), client.StatusStyle(job.Status))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				job.ID.String()[:8], job.Company, job.Position, job.Location, badge, job.Date)
		}
		return w.Flush()
	},
}

// --- show ---

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one application in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := loadController(cmd)
		if err != nil {
			return err
		}
		job, err := findJob(ctl, args[0])
		if err != nil {
			return err
		}
		ctl.ViewDetails(job)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(job)
		}

		printField("ID", "%s", job.ID)
		printField("Company", "%s", job.Company)
		printField("Position", "%s", job.Position)
		printField("Location", "%s", job.Location)
		printField("Status", "%s", statusBadge(string(job.Status), client.StatusStyle(job.Status)))
		printField("Date", "%s", job.Date)
		if job.Notes != nil {
			printField("Notes", "%s", *job.Notes)
		}
		if job.Salary != nil {
			printField("Salary", "%s", *job.Salary)
		}
		if job.Contact != nil {
			printField("Contact", "%s", *job.Contact)
		}
		if job.URL != nil {
			printField("URL", "%s", *job.URL)
		}
		return nil
	},
}

// --- add ---

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new application",
	Long: `Add a new application.

Examples:
  jobtrack add --company Acme --position "Backend Engineer" --location Remote
  jobtrack add --company Globex --position Analyst --location NYC --status Interview --notes "referred by Sam"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl := newController()
		form := ctl.BeginAdd()
		applyFormFlags(cmd, &form)

		if form.Company == "" || form.Position == "" || form.Location == "" {
			return fmt.Errorf("--company, --position, and --location are required")
		}

		return ctl.SubmitAdd(cmd.Context(), form)
	},
}

// --- edit ---

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an application; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := loadController(cmd)
		if err != nil {
			return err
		}
		job, err := findJob(ctl, args[0])
		if err != nil {
			return err
		}

		form := ctl.BeginEdit(job)
		applyFormFlags(cmd, &form)

		return ctl.SubmitEdit(cmd.Context(), form)
	},
}

// --- delete ---

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an application (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := loadController(cmd)
		if err != nil {
			return err
		}
		job, err := findJob(ctl, args[0])
		if err != nil {
			return err
		}

		ctl.RequestDelete(job)

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Delete %s • %s? [y/N] ", job.Company, job.Position)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				ctl.CancelDelete()
				fmt.Println("Cancelled.")
				return nil
			}
		}

		return ctl.ConfirmDelete(cmd.Context())
	},
}

// applyFormFlags overwrites form fields with any flags the user set.
func applyFormFlags(cmd *cobra.Command, form *client.JobForm) {
	flagTargets := map[string]*string{
		"company":  &form.Company,
		"position": &form.Position,
		"location": &form.Location,
		"status":   &form.Status,
		"date":     &form.Date,
		"notes":    &form.Notes,
		"salary":   &form.Salary,
		"contact":  &form.Contact,
		"url":      &form.URL,
	}
	for name, target := range flagTargets {
		if cmd.Flags().Changed(name) {
			*target, _ = cmd.Flags().GetString(name)
		}
	}
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("company", "", "company name")
	cmd.Flags().String("position", "", "position title")
	cmd.Flags().String("location", "", "location")
	cmd.Flags().String("status", "", "status (Applied, Interview, Offer, Rejected)")
	cmd.Flags().String("date", "", "application date (YYYY-MM-DD)")
	cmd.Flags().String("notes", "", "notes")
	cmd.Flags().String("salary", "", "salary")
	cmd.Flags().String("contact", "", "contact")
	cmd.Flags().String("url", "", "posting URL")
}

func init() {
	listCmd.Flags().String("search", "", "filter by company, position, location, or status")
	listCmd.Flags().Bool("json", false, "output JSON")
	showCmd.Flags().Bool("json", false, "output JSON")
	deleteCmd.Flags().Bool("yes", false, "skip confirmation")
	addFormFlags(addCmd)
	addFormFlags(editCmd)
}
