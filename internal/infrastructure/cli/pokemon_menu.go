// Package cli internal/infrastructure/cli/pokemon_menu.go
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
)

// Pokedex is the pokemon lookup used by the pokedex menu
type Pokedex interface {
	GetPokemonInfo(ctx context.Context, name string) (*entity.Pokemon, bool)
	GetPokemonAbilities(ctx context.Context) []string
	GetPokemonMoves(ctx context.Context, name string) []string
	GetPokemonTypes(ctx context.Context) []string
	GetPokemonOfType(ctx context.Context, typeName string) []string
}

var pokedexBanner = []string{
	"",
	"Welcome to the Pokémon Information System!",
	"Please select an option:",
}

// PokedexConsole implements the options of the pokemon menu
type PokedexConsole struct {
	pokedex  Pokedex
	prompter *Prompter
	out      io.Writer
	logger   logger.Logger
}

// NewPokedexConsole creates the pokedex console
func NewPokedexConsole(pokedex Pokedex, prompter *Prompter, out io.Writer, log logger.Logger) *PokedexConsole {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &PokedexConsole{
		pokedex:  pokedex,
		prompter: prompter,
		out:      out,
		logger:   log,
	}
}

// Menu returns the six option pokemon menu
func (c *PokedexConsole) Menu() *Menu {
	return NewMenu(c.prompter, c.out, c.logger, pokedexBanner,
		Option{Label: "Get Pokémon Information", Action: c.Info},
		Option{Label: "Get Pokémon Abilities", Action: c.Abilities},
		Option{Label: "Get Pokémon Moves", Action: c.Moves},
		Option{Label: "Get Pokémon Types", Action: c.Types},
		Option{Label: "Get Pokémon of a Specific Type", Action: c.OfType},
		Option{Label: "Exit", Action: c.exit, Exit: true},
	)
}

// Info asks for a name and prints the pokemon's details
func (c *PokedexConsole) Info(ctx context.Context) error {
	name, err := c.prompter.Ask("Enter the Pokémon name: ")
	if err != nil {
		return err
	}

	if pokemon, ok := c.pokedex.GetPokemonInfo(ctx, name); ok {
		c.DisplayPokemonInfo(pokemon)
	}
	return nil
}

// DisplayPokemonInfo prints name, height, weight and abilities of p
func (c *PokedexConsole) DisplayPokemonInfo(p *entity.Pokemon) {
	fmt.Fprintln(c.out)
	headingStyle.Fprintln(c.out, "Pokémon Information:")
	fmt.Fprintf(c.out, "Name: %s\n", capitalize(p.Name))
	fmt.Fprintf(c.out, "Height: %d\n", p.Height)
	fmt.Fprintf(c.out, "Weight: %d\n", p.Weight)
	fmt.Fprintln(c.out, "Abilities:")
	for _, ability := range p.Abilities {
		fmt.Fprintf(c.out, "- %s\n", ability)
	}
}

// Abilities prints the first page of ability names
func (c *PokedexConsole) Abilities(ctx context.Context) error {
	c.printList("Pokémon Abilities:", c.pokedex.GetPokemonAbilities(ctx), false)
	return nil
}

// Moves asks for a name and prints the pokemon's moves
func (c *PokedexConsole) Moves(ctx context.Context) error {
	name, err := c.prompter.Ask("Enter the Pokémon name: ")
	if err != nil {
		return err
	}

	c.printList("Pokémon Moves:", c.pokedex.GetPokemonMoves(ctx, name), false)
	return nil
}

// Types prints the type names
func (c *PokedexConsole) Types(ctx context.Context) error {
	c.printList("Pokémon Types:", c.pokedex.GetPokemonTypes(ctx), false)
	return nil
}

// OfType asks for a type and prints the pokemon that have it
func (c *PokedexConsole) OfType(ctx context.Context) error {
	typeName, err := c.prompter.Ask("Enter the Pokémon type: ")
	if err != nil {
		return err
	}

	names := c.pokedex.GetPokemonOfType(ctx, typeName)
	c.printList(fmt.Sprintf("Pokémon of Type %s:", capitalize(typeName)), names, true)
	return nil
}

func (c *PokedexConsole) exit(context.Context) error {
	fmt.Fprintln(c.out, "Exiting...")
	return nil
}

// printList prints heading and items, or nothing when items is empty
func (c *PokedexConsole) printList(heading string, items []string, capitalized bool) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintln(c.out)
	headingStyle.Fprintln(c.out, heading)
	for _, item := range items {
		if capitalized {
			item = capitalize(item)
		}
		fmt.Fprintln(c.out, item)
	}
}
