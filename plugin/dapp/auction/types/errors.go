package types

import "errors"

var (
	ErrNotSuperAdmin     = errors.New("only the super admin may manage creators")
	ErrCreatorExists     = errors.New("creator is already registered")
	ErrCreatorNotFound   = errors.New("creator is not registered")
	ErrNotCreator        = errors.New("caller is not the creator of this auction")
	ErrAuctionExists     = errors.New("an auction for this prize already exists")
	ErrAuctionNotFound   = errors.New("auction does not exist")
	ErrAuctionTimes      = errors.New("auction start and end times are invalid")
	ErrTickOption        = errors.New("tick option must be percentage or flat")
	ErrAuctionNotStarted = errors.New("auction has not started yet")
	ErrAuctionEnded      = errors.New("auction has already ended")
	ErrAuctionNotEnded   = errors.New("auction has not ended yet")
	ErrBidTooLow         = errors.New("bid is below the minimum for this auction")
	ErrPrevBidder        = errors.New("previous bidder does not match the current winner")
	ErrBackendAuth       = errors.New("backend wallet authorization is missing or wrong")
	ErrAuctionHasBids    = errors.New("auction already has bids and cannot be cancelled")
	ErrNotWinner         = errors.New("caller may not claim this prize")
	ErrPrizeType         = errors.New("unknown prize type")
	ErrPrizeProof        = errors.New("compressed prize transfer needs a merkle proof")
)
