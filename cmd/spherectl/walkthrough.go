package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"whalebyte.core/internal/domain/entities"
	"whalebyte.core/internal/interfaces/navigation"
	"whalebyte.core/internal/usecases"
)

// runWalkthrough drives one scripted signup-to-logout pass through the core
// flows. Development-only smoke path; every step logs and moves on.
func runWalkthrough(
	ctx context.Context,
	session *usecases.SessionUsecase,
	onboarding *usecases.OnboardingUsecase,
	controller *navigation.Controller,
	spheres *usecases.SphereUsecase,
	votes *usecases.VoteUsecase,
	moderation *usecases.ModerationUsecase,
	governance *usecases.GovernanceUsecase,
	chat *usecases.ChatUsecase,
	wallets *usecases.WalletUsecase,
) {
	username := fmt.Sprintf("walkthrough-%d", time.Now().Unix())

	// Signup -> onboarding, the only path into the passphrase flow
	if err := controller.Navigate(navigation.Signup); err != nil {
		log.Printf("walkthrough: navigate signup: %v", err)
		return
	}
	if err := controller.Navigate(navigation.Onboarding); err != nil {
		log.Printf("walkthrough: navigate onboarding: %v", err)
		return
	}

	if err := onboarding.Collect(ctx, &entities.SignupData{
		Username: username,
		Email:    username + "@spheres.app",
		Password: "walkthrough-password",
	}); err != nil {
		log.Printf("walkthrough: collect: %v", err)
		return
	}

	phrase, err := onboarding.GeneratePassphrase(ctx)
	if err != nil {
		log.Printf("walkthrough: generate passphrase: %v", err)
		return
	}
	if err := onboarding.Validate(ctx, phrase); err != nil {
		log.Printf("walkthrough: validate passphrase: %v", err)
		return
	}

	user, err := onboarding.Commit(ctx)
	if err != nil {
		log.Printf("walkthrough: commit: %v", err)
		return
	}
	log.Printf("walkthrough: onboarded %s, navigation root %s", user.Username, controller.Root())

	// Create a sphere, post into it, vote on the post
	sphere, err := spheres.Create(ctx, user.ID, &entities.CreateSphereInput{
		Name:        username + "-sphere",
		Description: "walkthrough sphere",
		Category:    "general",
	})
	if err != nil {
		log.Printf("walkthrough: create sphere: %v", err)
		return
	}

	if dest, err := navigation.SphereDetails(sphere.ID); err == nil {
		if err := controller.Navigate(navigation.Spheres); err == nil {
			_ = controller.Navigate(dest)
		}
	}

	post, err := spheres.CreatePost(ctx, sphere.ID, user.ID, &entities.CreatePostInput{
		Content: "first post from the walkthrough",
	})
	if err != nil {
		log.Printf("walkthrough: create post: %v", err)
		return
	}
	if err := votes.CastOnPost(ctx, user.ID, post.ID, entities.VoteUp); err != nil {
		log.Printf("walkthrough: vote: %v", err)
	}

	// Open a proposal on the fresh sphere
	if _, err := governance.Propose(ctx, sphere.ID, user.ID,
		"walkthrough proposal", "does this sphere need rules?", entities.ProposalOther, 24*time.Hour); err != nil {
		log.Printf("walkthrough: propose: %v", err)
	}

	// A transfer against an empty wallet settles as failed, by design
	if wallet, err := wallets.GetByUserID(ctx, user.ID); err == nil {
		if tx, err := wallets.Transfer(ctx, wallet.Address, wallet.Address, 1,
			entities.TransactionTypeTransfer, nil, nil); err == nil {
			if _, err := wallets.Settle(ctx, tx.ID); err != nil {
				log.Printf("walkthrough: settle on empty wallet: %v", err)
			}
		}
	}

	// File a report against the post and sweep self-destructed messages once
	if _, err := moderation.File(ctx, user.ID, &post.ID, nil, nil, "walkthrough smoke report"); err != nil {
		log.Printf("walkthrough: file report: %v", err)
	}
	if count, err := chat.SweepExpired(ctx, time.Now()); err == nil {
		log.Printf("walkthrough: swept %d expired messages", count)
	}

	// Logout drops the shell and all its history
	session.Logout(ctx)
	log.Printf("walkthrough: logged out, navigation root %s, current %s",
		controller.Root(), controller.Current().Kind)
}
