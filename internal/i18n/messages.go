// Package i18n holds the user-facing strings of the game and the printers
// that localize them.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/jaminalder/codex-dominoes/internal/domain"
)

// Message keys. The English text doubles as the key.
const (
	StockSize      = "Stock size: %d"
	ComputerPieces = "Computer pieces: %d"
	YourPieces     = "Your pieces:"
	YourTurn       = "Status: It is your turn to make a move. Enter your command."
	ComputerTurn   = "Status: Computer is about to make a move. Press Enter to continue..."
	HumanWon       = "Status: The game is over. You won!"
	ComputerWon    = "Status: The game is over. The computer won!"
	DrawGame       = "Status: The game is over. It's a draw!"
	InvalidInput   = "Invalid input. Please try again."
	IllegalMove    = "Illegal move. Please try again."
	NotYourTurn    = "Not your turn."
	Spectator      = "You are a spectator."
	GameIsOver     = "The game is over."
)

var spanish = map[string]string{
	StockSize:      "Fichas en el pozo: %d",
	ComputerPieces: "Fichas de la computadora: %d",
	YourPieces:     "Tus fichas:",
	YourTurn:       "Estado: Es tu turno. Escribe tu jugada.",
	ComputerTurn:   "Estado: La computadora va a jugar. Pulsa Enter para continuar...",
	HumanWon:       "Estado: Fin de la partida. ¡Ganaste!",
	ComputerWon:    "Estado: Fin de la partida. ¡Ganó la computadora!",
	DrawGame:       "Estado: Fin de la partida. ¡Empate!",
	InvalidInput:   "Entrada no válida. Inténtalo de nuevo.",
	IllegalMove:    "Jugada ilegal. Inténtalo de nuevo.",
	NotYourTurn:    "No es tu turno.",
	Spectator:      "Eres espectador.",
	GameIsOver:     "La partida terminó.",
}

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
	messages  = mustCatalog()
)

func mustCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range spanish {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(language.Spanish, key, text); err != nil {
			panic(err)
		}
	}
	return b
}

// Printer returns a printer for the best supported match of prefs. Each
// pref may be a tag ("es") or a full Accept-Language header value.
func Printer(prefs ...string) *message.Printer {
	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	return message.NewPrinter(language.Make(base.String()), message.Catalog(messages))
}

// Supported reports whether lang matches one of the bundled languages.
func Supported(lang string) bool {
	_, _, confidence := matcher.Match(language.Make(lang))
	return confidence != language.No
}

// Status returns the status line for a game snapshot.
func Status(p *message.Printer, v domain.View) string {
	switch v.Outcome {
	case domain.HumanWins:
		return p.Sprintf(HumanWon)
	case domain.ComputerWins:
		return p.Sprintf(ComputerWon)
	case domain.Draw:
		return p.Sprintf(DrawGame)
	}
	if v.Phase == domain.AwaitingComputer {
		return p.Sprintf(ComputerTurn)
	}
	return p.Sprintf(YourTurn)
}
