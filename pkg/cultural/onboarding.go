package cultural

import (
	"Recipe-Hub/domain"
	"slices"
)

// NextOnboardingStep validates completing step while the user is at current and returns the
// step the user moves to. Re-completing an earlier step is a no-op.
func NextOnboardingStep(current, step string) (string, error) {
	cur := slices.Index(domain.OnboardingSteps, current)
	if cur < 0 {
		cur = 0
	}
	idx := slices.Index(domain.OnboardingSteps, step)
	if idx < 0 || step == domain.OnboardingStepDone {
		return "", domain.ErrInvalidOnboardingStep
	}
	if idx < cur {
		return domain.OnboardingSteps[cur], nil
	}
	if idx > cur {
		return "", domain.ErrInvalidOnboardingStep
	}
	return domain.OnboardingSteps[idx+1], nil
}

func onboardingStatus(current string, isOnboarded bool) domain.OnboardingStatus {
	cur := slices.Index(domain.OnboardingSteps, current)
	if cur < 0 {
		cur = 0
	}
	last := len(domain.OnboardingSteps) - 1
	status := domain.OnboardingStatus{
		IsOnboarded:    isOnboarded || cur == last,
		CurrentStep:    domain.OnboardingSteps[cur],
		CompletedSteps: append([]string{}, domain.OnboardingSteps[:cur]...),
		RemainingSteps: append([]string{}, domain.OnboardingSteps[cur:last]...),
	}
	return status
}
