package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/logging"
	"multiselect/internal/terminal"
	"multiselect/internal/ui"
	"multiselect/internal/ui/controller"
	"multiselect/internal/ui/views"
)

func runSelect(cmd *cobra.Command, opts *rootOptions) error {
	cs := config.NewConfigServiceAt(opts.configPath)
	cfg, err := cs.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	items := cfg.ToItems()
	if len(items) == 0 {
		return ErrNoItems
	}

	_, closer, err := logging.Setup(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger := log.With("component", "app")
	logger.Info("multiselect started", "items", len(items), "limit", cfg.Limit, "driver", cfg.UI.Driver, "config", cs.Path())

	bus := eventbus.New()
	unsubscribe := subscribeEventLog(bus)
	defer unsubscribe()

	ctrl := controller.New(items,
		controller.WithLimit(cfg.Limit),
		controller.WithInitialIndex(cfg.InitialIndex),
		controller.WithSelectedValues(cfg.Selected...),
		controller.WithBus(bus),
	)

	styles := views.NewStyles()
	renderer := views.NewRenderer(styles, views.DefaultRowRenderer(styles, views.Glyphs{
		Cursor:    cfg.UI.Cursor,
		Checked:   cfg.UI.Checked,
		Unchecked: cfg.UI.Unchecked,
	}))

	var (
		submitted bool
		result    domain.ItemList
	)
	switch cfg.UI.Driver {
	case config.DriverRaw:
		submitted, result, err = runRaw(cmd, ctrl, renderer, cfg.Title)
	default:
		submitted, result, err = runTea(cmd, ctrl, renderer, cfg)
	}
	if err != nil {
		return err
	}
	if !submitted {
		logger.Info("selection cancelled")
		return ErrCancelled
	}
	logger.Info("selection submitted", "values", result.Values())

	if err := writeResult(cmd.OutOrStdout(), result, opts.jsonOutput); err != nil {
		return err
	}

	if opts.save {
		cfg.Selected = result.Values()
		if err := cs.Save(cfg); err != nil {
			return fmt.Errorf("failed to save selection: %w", err)
		}
		logger.Info("selection saved", "path", cs.Path())
	}
	return nil
}

// applyFlags overrides configuration values with flags the user set explicitly
func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if flags.Changed("limit") {
		cfg.Limit = opts.limit
	}
	if flags.Changed("initial-index") {
		cfg.InitialIndex = opts.initialIndex
	}
	if flags.Changed("item") {
		cfg.Items = make([]config.ItemConfig, 0, len(opts.items))
		for _, raw := range opts.items {
			cfg.Items = append(cfg.Items, parseItemFlag(raw))
		}
	}
	if opts.raw {
		cfg.UI.Driver = config.DriverRaw
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}
}

// parseItemFlag splits "label=value". Without "=", the label is the value.
func parseItemFlag(raw string) config.ItemConfig {
	label, value, found := strings.Cut(raw, "=")
	if !found {
		return config.ItemConfig{Label: raw, Value: raw}
	}
	return config.ItemConfig{Label: label, Value: value}
}

func runTea(cmd *cobra.Command, ctrl *controller.Controller, renderer *views.Renderer, cfg *config.Config) (bool, domain.ItemList, error) {
	m := ui.NewModel(ctrl, ui.Options{
		Title:    cfg.Title,
		ShowHelp: cfg.UI.ShowHelp,
		Renderer: renderer,
	})

	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	if _, err := p.Run(); err != nil {
		return false, nil, fmt.Errorf("failed to run program: %w", err)
	}
	return m.Outcome() == ui.OutcomeSubmitted, m.Result(), nil
}

func runRaw(cmd *cobra.Command, ctrl *controller.Controller, renderer *views.Renderer, title string) (bool, domain.ItemList, error) {
	in := cmd.InOrStdin()

	var raw controller.RawMode
	if f, ok := in.(*os.File); ok {
		rm, err := terminal.NewRawMode(f)
		switch {
		case err == nil:
			raw = rm
		case errors.Is(err, terminal.ErrNotTerminal):
			log.With("component", "app").Warn("input is not a terminal, reading keystrokes as-is", "err", err)
		default:
			return false, nil, err
		}
	}

	session := terminal.NewSession(ctrl, renderer, title, in, cmd.ErrOrStderr(), raw)
	res, err := session.Run(cmd.Context())
	if err != nil {
		return false, nil, err
	}
	return res.Submitted, res.Items, nil
}

// subscribeEventLog mirrors control events into the log file
func subscribeEventLog(bus eventbus.EventBus) func() {
	logger := log.With("component", "events")

	logEvent := func(e eventbus.DomainEvent) {
		switch ev := e.(type) {
		case eventbus.SelectedEvent:
			logger.Debug("selected", "value", ev.Item.Value)
		case eventbus.UnselectedEvent:
			logger.Debug("unselected", "value", ev.Item.Value)
		case eventbus.SubmittedEvent:
			logger.Debug("submitted", "count", len(ev.Items))
		case eventbus.ItemsReplacedEvent:
			logger.Debug("items replaced", "count", ev.Count)
		case eventbus.FocusChangedEvent:
			logger.Debug("focus changed", "focused", ev.Focused)
		}
	}

	unsubscribers := []func(){
		bus.Subscribe(eventbus.EventSelected, logEvent),
		bus.Subscribe(eventbus.EventUnselected, logEvent),
		bus.Subscribe(eventbus.EventSubmitted, logEvent),
		bus.Subscribe(eventbus.EventItemsReplaced, logEvent),
		bus.Subscribe(eventbus.EventFocusChanged, logEvent),
	}
	return func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}
}
