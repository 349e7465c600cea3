package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/playable/videopoker"
	"videopoker-server/pkg/poker"

	"github.com/pterm/pterm"
)

// Driver plays video poker over a line-based reader and writer
type Driver struct {
	in     *bufio.Scanner
	out    io.Writer
	game   *videopoker.Game
	styled bool
}

// NewDriver returns a new console driver
// If styled is true, output is colored with pterm (only use it on a terminal)
func NewDriver(in io.Reader, out io.Writer, game *videopoker.Game, styled bool) *Driver {
	return &Driver{
		in:     bufio.NewScanner(in),
		out:    out,
		game:   game,
		styled: styled,
	}
}

// Play runs rounds until the player quits, runs out of tokens, or the input is closed
func (d *Driver) Play() error {
	d.welcome()

	for {
		if d.game.IsOver() {
			d.println("You do not have enough tokens to keep playing.")
			break
		}

		answer, err := d.prompt("Would you like to play a round? (y/n): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return err
		}

		if a := strings.ToLower(answer); a != "y" && a != "yes" {
			break
		}

		if err := d.playRound(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return err
		}
	}

	d.println("Thank you for playing Video Poker!")
	return nil
}

func (d *Driver) welcome() {
	if d.styled {
		d.print(pterm.DefaultHeader.Sprint("Welcome to Video Poker!") + "\n")
		d.printPayTable()
	} else {
		d.println("Welcome to Video Poker!")
	}

	d.printTokens()
}

func (d *Driver) playRound() error {
	if err := d.placeBet(); err != nil {
		return err
	}

	d.printHand()

	count, err := d.promptInt(fmt.Sprintf("How many cards (0-%d) would you like to exchange? ", videopoker.HandSize), 0, videopoker.HandSize)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		pos, err := d.promptInt(fmt.Sprintf("Which card (1-%d) would you like to exchange? ", videopoker.HandSize), 1, videopoker.HandSize)
		if err != nil {
			return err
		}

		if _, err := d.game.Exchange(pos); err != nil {
			return err
		}
	}

	d.printHand()

	result, err := d.game.Settle()
	if err != nil {
		return err
	}

	d.printResult(result)
	d.printTokens()
	return nil
}

// placeBet asks for a bet until the game accepts one
func (d *Driver) placeBet() error {
	opts := d.game.Options()
	maxBet := int(math.Min(opts.MaxBet, math.Floor(d.game.Bankroll())))
	minBet := int(math.Ceil(opts.MinBet))
	question := fmt.Sprintf("How many tokens to bet this hand? (%d to %d): ", minBet, maxBet)

	for {
		bet, err := d.promptInt(question, minBet, maxBet)
		if err != nil {
			return err
		}

		err = d.game.Bet(float64(bet))
		if err == nil {
			return nil
		}

		if !errors.Is(err, videopoker.ErrInvalidBet) {
			return err
		}
	}
}

// promptInt asks the question until an integer between min and max is entered
func (d *Driver) promptInt(question string, min, max int) (int, error) {
	for {
		answer, err := d.prompt(question)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= min && n <= max {
			return n, nil
		}
	}
}

func (d *Driver) prompt(question string) (string, error) {
	if d.styled {
		question = pterm.FgYellow.Sprint(question)
	}

	d.print(question)
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(d.in.Text()), nil
}

func (d *Driver) printHand() {
	hand := d.game.Hand()
	if d.styled {
		d.println("The hand is:   " + pterm.LightCyan(hand.DisplayString("  ")))
		return
	}

	d.println("The hand is:   " + hand.DisplayString("  "))
}

func (d *Driver) printResult(result *videopoker.Result) {
	message := fmt.Sprintf("You got a %s!", result.Hand)
	payout := fmt.Sprintf("PAYOUT: %g tokens", result.Payout)

	if !d.styled {
		d.println(message)
		d.println(payout)
		return
	}

	if result.Payout > 0 {
		d.print(pterm.Success.Sprintln(message))
	} else {
		d.print(pterm.Warning.Sprintln(message))
	}

	d.print(pterm.Info.Sprintln(payout))
}

func (d *Driver) printTokens() {
	d.println(fmt.Sprintf("YOUR TOKENS: %.1f", d.game.Bankroll()))
}

func (d *Driver) printPayTable() {
	data := pterm.TableData{{"Hand", "Pays"}}
	for _, row := range d.game.Options().PayTable.Rows() {
		data = append(data, []string{row.Hand.String(), strconv.Itoa(row.Multiplier)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return
	}

	d.println(table)
}

func (d *Driver) print(s string) {
	_, _ = io.WriteString(d.out, s)
}

func (d *Driver) println(s string) {
	d.print(s + "\n")
}

// FormatHand returns the display names of the cards, i.e., "Ace of Spades  Ten of Hearts"
func FormatHand(cards []deck.Card) string {
	return deck.Hand(cards).DisplayString("  ")
}

// PayTableString renders the pay table as plain text, best hand first
func PayTableString(p poker.PayTable) string {
	var sb strings.Builder
	for _, row := range p.Rows() {
		fmt.Fprintf(&sb, "%-16s %4d\n", row.Hand, row.Multiplier)
	}

	return sb.String()
}
