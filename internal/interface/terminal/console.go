package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	domproduct "example.com/catalog-admin/internal/domain/product"
	"example.com/catalog-admin/internal/usecase/catalog"
)

const helpText = `Commands:
  list                   show the filtered product list
  categories             show the categories
  edit N                 edit product at row N
  name TEXT              set the draft designation
  promo on|off           set the draft promotion flag
  category ID|none       pick the draft category
  save                   submit the draft
  cancel                 leave edit mode
  delete N               delete product at row N
  search TEXT            search by designation (empty clears)
  filter-category ID|none
  filter-promo on|off
  reset                  clear all filters
  reload                 reload products and categories
  help
  quit
`

var errQuit = errors.New("quit")

// Console is a line-oriented admin screen. It also answers the catalog's
// confirmation prompts from the same input.
type Console struct {
	catalog *catalog.Service
	in      *bufio.Scanner
	out     io.Writer
	log     logrus.FieldLogger
}

func New(svc *catalog.Service, in io.Reader, out io.Writer, logger logrus.FieldLogger) *Console {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Console{
		catalog: svc,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     logger.WithField("component", "terminal"),
	}
}

// Run reads commands until quit, end of input or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.printList()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		err := c.exec(ctx, strings.TrimSpace(c.in.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

func (c *Console) Confirm(ctx context.Context, message string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", message)
	if !c.in.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(c.in.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (c *Console) Notify(n catalog.Notice) {
	fmt.Fprintf(c.out, "[%s] %s\n", n.Kind, n.Message)
}

func (c *Console) exec(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "list":
		c.printList()
	case "categories":
		c.printCategories()
	case "edit":
		p, err := c.row(arg)
		if err != nil {
			return err
		}
		if err := c.catalog.StartEdit(p); err != nil {
			return err
		}
		c.printDraft()
	case "name":
		if err := c.catalog.EditDraft(func(d *domproduct.Product) { d.Designation = arg }); err != nil {
			return err
		}
		c.printDraft()
	case "promo":
		on, err := parseSwitch(arg)
		if err != nil {
			return err
		}
		if err := c.catalog.EditDraft(func(d *domproduct.Product) { d.EnPromotion = on }); err != nil {
			return err
		}
		c.printDraft()
	case "category":
		id, err := catalog.ParseCategoryID(noneAsEmpty(arg))
		if err != nil {
			return err
		}
		if err := c.catalog.SelectCategory(id); err != nil {
			return err
		}
		c.printDraft()
	case "save":
		if err := c.catalog.SubmitEdit(ctx, c); err != nil {
			if errors.Is(err, catalog.ErrNotEditing) {
				return err
			}
			c.log.WithError(err).Debug("Update not applied")
			c.printError()
			return nil
		}
		c.printList()
	case "cancel":
		c.catalog.CancelEdit()
		c.printList()
	case "delete":
		p, err := c.row(arg)
		if err != nil {
			return err
		}
		if err := c.catalog.DeleteProduct(ctx, p, c); err != nil {
			c.log.WithError(err).Debug("Delete failed")
			return nil
		}
		c.printList()
	case "search":
		c.catalog.SearchByName(ctx, arg)
		c.printList()
	case "filter-category":
		if err := c.catalog.FilterByCategory(ctx, noneAsEmpty(arg)); err != nil {
			return err
		}
		c.printList()
	case "filter-promo":
		on, err := parseSwitch(arg)
		if err != nil {
			return err
		}
		c.catalog.FilterByPromotion(ctx, on)
		c.printList()
	case "reset":
		c.catalog.ResetFilters()
		c.printList()
	case "reload":
		if err := c.catalog.LoadCategories(ctx); err != nil {
			c.log.WithError(err).Debug("Category reload failed")
		}
		if err := c.catalog.LoadProducts(ctx); err != nil {
			c.log.WithError(err).Debug("Product reload failed")
		}
		c.printList()
	case "help":
		fmt.Fprint(c.out, helpText)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type help", cmd)
	}
	return nil
}

// row resolves a 1-based row number of the displayed list.
func (c *Console) row(arg string) (*domproduct.Product, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("row number expected, got %q", arg)
	}
	p, ok := c.catalog.FilteredAt(n - 1)
	if !ok {
		return nil, fmt.Errorf("no row %d: %w", n, catalog.ErrUnknownProduct)
	}
	return p, nil
}

func (c *Console) printList() {
	v := c.catalog.View()
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tDESIGNATION\tCATEGORY\tPROMO")
	for i, p := range v.Filtered {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", i+1, p.ID, p.DisplayName("-"), categoryName(p), yesNo(p.EnPromotion))
	}
	_ = tw.Flush()
	fmt.Fprintf(c.out, "%d of %d products\n", len(v.Filtered), len(v.Products))
	c.printError()
}

func (c *Console) printCategories() {
	v := c.catalog.View()
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, cat := range v.Categories {
		fmt.Fprintf(tw, "%d\t%s\n", cat.ID, cat.Name)
	}
	_ = tw.Flush()
}

func (c *Console) printDraft() {
	v := c.catalog.View()
	if !v.EditMode {
		return
	}
	category := "none"
	if v.SelectedCategory != nil {
		category = v.SelectedCategory.Name
	}
	fmt.Fprintf(c.out, "editing #%d: name=%q promo=%s category=%s\n",
		v.Draft.ID, v.Draft.Designation, yesNo(v.Draft.EnPromotion), category)
	c.printError()
}

func (c *Console) printError() {
	if msg := c.catalog.View().Error; msg != "" {
		fmt.Fprintf(c.out, "! %s\n", msg)
	}
}

func parseSwitch(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "yes", "true":
		return true, nil
	case "off", "no", "false":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", arg)
	}
}

func noneAsEmpty(arg string) string {
	if strings.EqualFold(arg, "none") {
		return ""
	}
	return arg
}

func categoryName(p *domproduct.Product) string {
	if p.Categorie == nil || p.Categorie.Name == "" {
		return "-"
	}
	return p.Categorie.Name
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
