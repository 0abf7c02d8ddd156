package scene

import (
	"fmt"
	"strconv"
	"strings"

	"shader-showcase/internal/commands"
	"shader-showcase/internal/materials"
)

// RegisterCommands adds the selection and material commands to reg:
//
//	cmd select <index>|-name <name>   focus an item (index is 1-based)
//	cmd next / cmd prev               page through the list
//	cmd param [name values...]        list or set a parameter of the focused material
//	cmd list                          log every item
func (s *Scene) RegisterCommands(reg *commands.Registry) {
	selectFlags := commands.NewFlagSet("select")
	name := selectFlags.String("name", "", "item or effect name")
	reg.Register("select", "<index> | -name <name>", selectFlags, func(args []string) error {
		defer func() { *name = "" }()
		if *name != "" {
			i, ok := s.find(*name)
			if !ok {
				return fmt.Errorf("select: no item named %q", *name)
			}
			s.nav.Select(i)
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("select: want an index or -name")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("select: %w", err)
		}
		if !s.nav.Select(n - 1) {
			return fmt.Errorf("select: index %d out of range 1..%d", n, s.nav.Count())
		}
		return nil
	})

	reg.Register("next", "", nil, func([]string) error {
		s.nav.Page(1)
		return nil
	})
	reg.Register("prev", "", nil, func([]string) error {
		s.nav.Page(-1)
		return nil
	})

	reg.Register("param", "[name values...]", nil, func(args []string) error {
		e := s.Focused()
		if len(args) == 0 {
			fields := e.Entry.Material.Describe()
			if len(fields) == 0 {
				s.log.Infof("%s takes no parameters", e.Entry.Name)
			}
			for _, f := range fields {
				s.log.Infof("%s.%s = %s", e.Entry.Name, f.Name, f.Value)
			}
			return nil
		}
		values := make([]float32, 0, len(args)-1)
		for _, a := range args[1:] {
			v, err := strconv.ParseFloat(a, 32)
			if err != nil {
				return fmt.Errorf("param %s: %w", args[0], err)
			}
			values = append(values, float32(v))
		}
		if err := e.Entry.Material.SetParam(args[0], values...); err != nil {
			return fmt.Errorf("param: %w", err)
		}
		s.log.Infof("%s.%s set", e.Entry.Name, args[0])
		return nil
	})

	reg.Register("list", "", nil, func([]string) error {
		for i, e := range s.items {
			mark := " "
			if e.Focused {
				mark = "*"
			}
			s.log.Infof("%s%2d %s (%s)", mark, i+1, e.Entry.Name, e.Entry.Material.Kind)
		}
		return nil
	})
}

// find matches name against item names first, then effect kinds.
func (s *Scene) find(name string) (int, bool) {
	for i, e := range s.items {
		if strings.EqualFold(e.Entry.Name, name) {
			return i, true
		}
	}
	k, err := materials.ParseKind(name)
	if err != nil {
		return 0, false
	}
	for i, e := range s.items {
		if e.Entry.Material.Kind == k {
			return i, true
		}
	}
	return 0, false
}
