package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/character"
	"github.com/syntaxjak/Legend-of-the-Red-Desktop/pkg/progression"
)

// characterSheet shows the dossier and lets the operator use a pocket item.
// It returns false only when input ran out during a pause.
func (g *Game) characterSheet() (bool, error) {
	for {
		g.con.Clear()
		g.renderSheet()

		if len(g.character.Pockets) == 0 {
			_, err := g.con.WaitForEnter("Press ENTER to return.")
			return true, err
		}

		g.con.Notice("Select a pocket number or press ENTER to return.")
		input, ok, err := g.con.ReadLine()
		if err != nil {
			return false, err
		}
		if !ok || input == "" || strings.EqualFold(input, "q") {
			return true, nil
		}

		slot, convErr := strconv.Atoi(input)
		pocket, found := g.character.Pocket(slot)
		if convErr != nil || !found {
			g.con.Notice("That pocket is empty or inaccessible.")
			continue
		}

		g.usePocket(pocket)
		g.reward(progression.RewardSmall)
		if keep, err := g.con.Pause(); err != nil || !keep {
			return false, err
		}
	}
}

func (g *Game) renderSheet() {
	c := g.character
	g.con.Println("")
	g.con.Highlight("== Operator Dossier ==")
	g.con.Label("Name", c.Name)
	g.con.Label("Level", fmt.Sprintf("%d    XP: %d/%d", c.Level, c.XP, c.Threshold()))
	g.con.Label("Clothing", "")
	for _, item := range c.Clothing {
		g.con.Println("  - " + item)
	}
	g.con.Label("Pockets", "")
	if len(c.Pockets) == 0 {
		g.con.Println("  (empty)")
		return
	}
	for i, pocket := range c.Pockets {
		g.con.Println(fmt.Sprintf("  [%d] %s — %s", i+1, pocket.Name, pocket.Description))
	}
}

func (g *Game) usePocket(pocket character.PocketItem) {
	if !pocket.Usable() {
		g.con.Println("This pocket item is ornamental only.")
		return
	}
	g.spawn(pocket.Name, pocket.Command, pocket.Name+" refuses to activate")
}
