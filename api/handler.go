package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/daystram/kestrel/board"
)

type movesRequest struct {
	FEN  string `json:"fen"`
	Side string `json:"side"`
}

type movesResponse struct {
	FEN   string   `json:"fen"`
	Side  string   `json:"side"`
	Moves []string `json:"moves"`
	Count int      `json:"count"`
}

type positionResponse struct {
	Position string `json:"position"`
	FEN      string `json:"fen"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errInvalidSide = errors.New("invalid side")

func loadBoard(fen string) (*board.Board, error) {
	if fen == "" {
		return board.NewBoard()
	}
	return board.NewBoard(board.WithFEN(fen))
}

// listMoves generates for side, or for the side to move when side is empty.
func listMoves(req movesRequest) (movesResponse, error) {
	b, err := loadBoard(req.FEN)
	if err != nil {
		return movesResponse{}, err
	}
	s := b.Turn()
	if req.Side != "" {
		if s, err = board.NewSideFromSymbol(req.Side); err != nil {
			return movesResponse{}, errInvalidSide
		}
	}

	mvs := b.GeneratePseudoLegalMoves(s)
	res := movesResponse{
		FEN:   b.FEN(),
		Side:  s.Symbol(),
		Moves: make([]string, 0, len(mvs)),
		Count: len(mvs),
	}
	for _, mv := range mvs {
		res.Moves = append(res.Moves, mv.UCI())
	}
	return res, nil
}

func handleMoves(c *fiber.Ctx) error {
	res, err := listMoves(movesRequest{FEN: c.Query("fen"), Side: c.Query("side")})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(res)
}

func handlePosition(c *fiber.Ctx) error {
	b, err := loadBoard(c.Query("fen"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(positionResponse{
		Position: b.Position(),
		FEN:      b.FEN(),
	})
}

// handleStream answers every movesRequest read from the socket until the
// client goes away or a frame fails. Bad requests get an errorResponse and
// keep the connection open.
func handleStream(c *websocket.Conn) {
	for {
		var req movesRequest
		if err := c.ReadJSON(&req); err != nil {
			return
		}
		var msg any
		res, err := listMoves(req)
		if err != nil {
			msg = errorResponse{Error: err.Error()}
		} else {
			msg = res
		}
		if err := c.WriteJSON(msg); err != nil {
			return
		}
	}
}
