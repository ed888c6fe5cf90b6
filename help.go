package comando

import (
	"sort"
	"strings"
)

// HelpModel is the pure-data description of a node, assembled for
// rendering. Handler models carry Commands; command models carry a Synopsis
// and Arguments. Both carry the node's effective option set.
type HelpModel struct {
	Path        []string
	Name        string
	Brief       string
	Description string
	Synopsis    string
	Arguments   []ArgumentHelp
	Options     []OptionHelp
	Commands    []CommandHelp
}

// ArgumentHelp describes one positional argument.
type ArgumentHelp struct {
	Name      string
	Pattern   string
	TypeLabel string
	Default   interface{}
	Kind      ArgKind
}

// OptionHelp describes one effective option.
type OptionHelp struct {
	Name        string
	Short       string
	Synopsis    string
	TypeLabel   string
	Default     interface{}
	Description string
	Flag        bool
}

// CommandHelp is a child entry in a handler model.
type CommandHelp struct {
	Name  string
	Brief string
}

// HelpModel assembles the handler's description: brief, effective options,
// and an alphabetical list of children (including the implicit help
// command).
func (h *Handler) HelpModel() (*HelpModel, error) {
	effective, err := resolveOptions(h)
	if err != nil {
		return nil, err
	}

	model := &HelpModel{
		Path:        h.path(),
		Name:        h.displayName(),
		Brief:       h.brief,
		Description: h.description,
		Options:     optionHelp(effective),
	}

	for pair := h.children.Oldest(); pair != nil; pair = pair.Next() {
		child := pair.Value.(Node)
		model.Commands = append(model.Commands, CommandHelp{
			Name:  child.Name(),
			Brief: child.Brief(),
		})
	}
	model.Commands = append(model.Commands, CommandHelp{
		Name:  helpName,
		Brief: "Display help information",
	})
	sort.Slice(model.Commands, func(i, j int) bool {
		return model.Commands[i].Name < model.Commands[j].Name
	})

	return model, nil
}

func (h *Handler) displayName() string {
	if h.name != "" {
		return h.name
	}
	return strings.Join(h.path(), " ")
}

// HelpModel assembles the command's description: synopsis, ordered argument
// list with type labels and defaults, and the full effective option set.
func (c *Command) HelpModel() (*HelpModel, error) {
	effective, err := resolveOptions(c)
	if err != nil {
		return nil, err
	}

	model := &HelpModel{
		Path:        c.path(),
		Name:        c.name,
		Brief:       c.brief,
		Description: c.description,
		Synopsis:    c.synopsis(),
		Options:     optionHelp(effective),
	}
	for _, arg := range c.arguments {
		model.Arguments = append(model.Arguments, ArgumentHelp{
			Name:      arg.Name,
			Pattern:   arg.pattern(),
			TypeLabel: arg.Type.Label,
			Default:   arg.Default,
			Kind:      arg.Kind,
		})
	}

	return model, nil
}

// optionHelp lists the effective options in resolution order (root-first
// declaration order, shadowing specs in place).
func optionHelp(effective *effectiveOptions) []OptionHelp {
	var entries []OptionHelp
	effective.each(func(opt *Option) {
		entries = append(entries, OptionHelp{
			Name:        opt.Name,
			Short:       opt.Short,
			Synopsis:    opt.synopsis(),
			TypeLabel:   opt.typeLabel(),
			Default:     opt.Default,
			Description: opt.Description,
			Flag:        opt.Type.IsFlag(),
		})
	})
	return entries
}
