package plan

var cardioCatalog = []Exercise{
	{Name: "Walking", Intensity: intensityLow, CaloriesBurn: "150-200 per 30 mins"},
	{Name: "Jogging", Intensity: intensityModerate, CaloriesBurn: "250-300 per 30 mins"},
	{Name: "Running", Intensity: intensityHigh, CaloriesBurn: "300-400 per 30 mins"},
	{Name: "Swimming", Intensity: intensityModerate, CaloriesBurn: "200-300 per 30 mins"},
	{Name: "Cycling", Intensity: intensityModerate, CaloriesBurn: "200-300 per 30 mins"},
	{Name: "Jump Rope", Intensity: intensityHigh, CaloriesBurn: "300-400 per 30 mins"},
}

var strengthCatalog = []Exercise{
	{Name: "Push-ups", Intensity: intensityModerate, Target: "upper body"},
	{Name: "Squats", Intensity: intensityModerate, Target: "lower body"},
	{Name: "Planks", Intensity: intensityModerate, Target: "core"},
	{Name: "Lunges", Intensity: intensityModerate, Target: "lower body"},
	{Name: "Dumbbell Rows", Intensity: intensityModerate, Target: "upper body"},
	{Name: "Wall Sits", Intensity: intensityLow, Target: "lower body"},
}

var flexibilityCatalog = []Exercise{
	{Name: "Yoga", Intensity: intensityLow, Focus: "full body flexibility"},
	{Name: "Stretching Routine", Intensity: intensityLow, Focus: "mobility"},
	{Name: "Pilates", Intensity: intensityModerate, Focus: "core and flexibility"},
}

// byIntensity returns the first catalog entry carrying the intensity tag.
func byIntensity(catalog []Exercise, intensity string) Exercise {
	for _, e := range catalog {
		if e.Intensity == intensity {
			return e
		}
	}
	return Exercise{}
}

// byName returns the catalog entry with the exact name.
func byName(catalog []Exercise, name string) Exercise {
	for _, e := range catalog {
		if e.Name == name {
			return e
		}
	}
	return Exercise{}
}

// with overlays the non-empty fields of override onto the template.
func with(template Exercise, override Exercise) Exercise {
	out := template
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Reps != "" {
		out.Reps = override.Reps
	}
	if override.Duration != "" {
		out.Duration = override.Duration
	}
	if override.Intensity != "" {
		out.Intensity = override.Intensity
	}
	if override.CaloriesBurn != "" {
		out.CaloriesBurn = override.CaloriesBurn
	}
	if override.Target != "" {
		out.Target = override.Target
	}
	if override.Focus != "" {
		out.Focus = override.Focus
	}
	return out
}

func reps(template Exercise, value string) Exercise {
	return with(template, Exercise{Reps: value})
}

func lasting(template Exercise, value string) Exercise {
	return with(template, Exercise{Duration: value})
}
