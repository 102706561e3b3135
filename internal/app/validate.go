package app

// Validate decodes a pack and reports its shape without playing it.
func (s Service) Validate(req ValidateRequest) (ValidateResult, error) {
	loaded, err := s.Load(LoadRequest{PackPath: req.PackPath})
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		PackName:     loaded.PackName,
		Rooms:        len(loaded.Data.Rooms),
		Items:        countItems(loaded.Data),
		Objective:    loaded.Data.Objective.Name,
		StartingRoom: loaded.Data.StartingRoom.Name,
	}, nil
}
